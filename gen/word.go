package gen

import (
	"strings"

	"github.com/confabulate/confab/expr"
)

// wordModule builds the `word` namespace.
func (g *Generator) wordModule() expr.Map {
	return expr.Map{
		"adjective": expr.Func(g.wordAdjective),
		"noun":      expr.Func(g.wordNoun),
		"words":     expr.Func(g.wordWords),
	}
}

func (g *Generator) wordAdjective(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Word.Adjectives), nil
}

func (g *Generator) wordNoun(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Word.Nouns), nil
}

// wordWords generates a space-separated sequence of random words, three by
// default or `count` when given as word.words(n).
func (g *Generator) wordWords(args ...any) (any, error) {
	count, _, err := lengthArg(args, 3)
	if err != nil {
		return nil, err
	}

	pool := make([]string, 0, len(g.data.Word.Adjectives)+len(g.data.Word.Nouns))
	pool = append(pool, g.data.Word.Adjectives...)
	pool = append(pool, g.data.Word.Nouns...)

	words := make([]string, count)

	for i := range words {
		words[i] = pick(g.rng, pool)
	}

	return strings.Join(words, " "), nil
}
