package gen

import (
	"strings"

	"github.com/confabulate/confab/expr"
)

// internetModule builds the `internet` namespace.
func (g *Generator) internetModule() expr.Map {
	return expr.Map{
		"email":      expr.Func(g.internetEmail),
		"userName":   expr.Func(g.internetUserName),
		"domainName": expr.Func(g.internetDomainName),
		"url":        expr.Func(g.internetURL),
	}
}

func (g *Generator) internetEmail(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	user, err := g.internetUserName()
	if err != nil {
		return nil, err
	}

	return user.(string) + "@" + pick(g.rng, g.data.Internet.FreeEmailDomains),
		nil
}

// internetUserName derives a login from a random name pair plus a two-digit
// disambiguator.
func (g *Generator) internetUserName(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	first := strings.ToLower(pick(g.rng, g.data.Person.FirstNames))
	last := strings.ToLower(pick(g.rng, g.data.Person.LastNames))

	var suffix [2]byte

	for i := range suffix {
		suffix[i] = digitChars[g.rng.IntN(len(digitChars))]
	}

	return first + "." + last + string(suffix[:]), nil
}

func (g *Generator) internetDomainName(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	word := strings.ToLower(pick(g.rng, g.data.Word.Nouns))

	return word + "." + pick(g.rng, g.data.Internet.DomainSuffixes), nil
}

func (g *Generator) internetURL(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	domain, err := g.internetDomainName()
	if err != nil {
		return nil, err
	}

	return "https://" + domain.(string), nil
}
