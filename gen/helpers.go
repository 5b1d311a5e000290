package gen

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/confabulate/confab/expr"
)

// helpersModule builds the `helpers` namespace.
func (g *Generator) helpersModule() expr.Map {
	return expr.Map{
		"fake":           expr.Func(g.helpersFake),
		"mustache":       expr.Func(g.helpersMustache),
		"slugify":        expr.Func(g.helpersSlugify),
		"arrayElement":   expr.Func(g.helpersArrayElement),
		"replaceSymbols": expr.Func(g.helpersReplaceSymbols),
	}
}

// Fake expands every {{expression}} placeholder in pattern by evaluating it
// against the generator's namespace tree and splicing in the result. Text
// outside placeholders is copied verbatim.
func (g *Generator) Fake(pattern string) (string, error) {
	var sb strings.Builder

	rest := pattern

	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			sb.WriteString(rest)

			return sb.String(), nil
		}

		sb.WriteString(rest[:open])

		end := strings.Index(rest[open+2:], "}}")
		if end < 0 {
			return "", ErrInvalidArgument.
				With(slog.String("pattern", pattern)).
				Wrap(fmt.Errorf("unterminated '{{' placeholder"))
		}

		expression := rest[open+2 : open+2+end]

		// Nested evaluation against the same tree; each call owns its own
		// parser, so recursion through helpers.fake is safe.
		value, err := expr.Evaluate(strings.TrimSpace(expression), g.root)
		if err != nil {
			return "", err
		}

		sb.WriteString(formatValue(value))

		rest = rest[open+2+end+2:]
	}
}

// helpersFake exposes Fake as helpers.fake(pattern).
func (g *Generator) helpersFake(args ...any) (any, error) {
	if err := atMost(args, 1); err != nil {
		return nil, err
	}

	pattern, err := stringArg(args, 0, "pattern")
	if err != nil {
		return nil, err
	}

	return g.Fake(pattern)
}

// helpersMustache renders helpers.mustache(template, vars): every
// {{key}} placeholder with a matching key in vars is replaced by that
// value; placeholders without a match are left verbatim.
func (g *Generator) helpersMustache(args ...any) (any, error) {
	if err := atMost(args, 2); err != nil {
		return nil, err
	}

	template, err := stringArg(args, 0, "template")
	if err != nil {
		return nil, err
	}

	vars, err := objectArg(args, 1, "vars")
	if err != nil {
		return nil, err
	}

	var sb strings.Builder

	rest := template

	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			sb.WriteString(rest)

			return sb.String(), nil
		}

		end := strings.Index(rest[open+2:], "}}")
		if end < 0 {
			sb.WriteString(rest)

			return sb.String(), nil
		}

		key := strings.TrimSpace(rest[open+2 : open+2+end])

		sb.WriteString(rest[:open])

		if value, ok := vars[key]; ok {
			sb.WriteString(formatValue(value))
		} else {
			sb.WriteString(rest[open : open+2+end+2])
		}

		rest = rest[open+2+end+2:]
	}
}

// helpersSlugify converts a string into a URL-safe slug: spaces become
// hyphens and characters outside [A-Za-z0-9._-] are dropped.
func (g *Generator) helpersSlugify(args ...any) (any, error) {
	if err := atMost(args, 1); err != nil {
		return nil, err
	}

	s, err := stringArg(args, 0, "value")
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-' || r == '_' || r == '.':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}

	return sb.String(), nil
}

// helpersArrayElement picks one random element of an array argument.
func (g *Generator) helpersArrayElement(args ...any) (any, error) {
	if err := atMost(args, 1); err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, ErrInvalidArgument.
			With(slog.String("argument", "array")).
			Wrap(fmt.Errorf("missing required argument 1"))
	}

	items, ok := args[0].([]any)
	if !ok {
		return nil, ErrInvalidArgument.
			With(slog.String("argument", "array")).
			Wrap(fmt.Errorf("expected array, got %T", args[0]))
	}

	if len(items) == 0 {
		return nil, ErrEmptyChoice.With(slog.String("argument", "array"))
	}

	return pick(g.rng, items), nil
}

// helpersReplaceSymbols expands a symbol pattern: '#' becomes a random
// digit, '?' a random uppercase letter, and '*' either. All other
// characters pass through unchanged.
func (g *Generator) helpersReplaceSymbols(args ...any) (any, error) {
	if err := atMost(args, 1); err != nil {
		return nil, err
	}

	pattern, err := stringArg(args, 0, "pattern")
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.Grow(len(pattern))

	for _, r := range pattern {
		switch r {
		case '#':
			sb.WriteByte(digitChars[g.rng.IntN(len(digitChars))])
		case '?':
			sb.WriteByte(upperChars[g.rng.IntN(len(upperChars))])
		case '*':
			both := digitChars + upperChars
			sb.WriteByte(both[g.rng.IntN(len(both))])
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String(), nil
}

// formatValue renders an evaluated value for text interpolation.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
