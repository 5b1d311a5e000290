package gen

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/confabulate/confab/expr"
)

const (
	digitChars = "0123456789"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// stringModule builds the `string` namespace.
func (g *Generator) stringModule() expr.Map {
	return expr.Map{
		"numeric":      expr.Func(g.stringNumeric),
		"alpha":        expr.Func(g.stringAlpha),
		"alphanumeric": expr.Func(g.stringAlphanumeric),
		"sample":       expr.Func(g.stringSample),
		"uuid":         expr.Func(g.stringUUID),
	}
}

// stringNumeric generates a string of random digits.
//
// Accepted forms:
//
//	string.numeric()
//	string.numeric(5)
//	string.numeric({ "length": 5, "allowLeadingZeros": true,
//	                 "exclude": ["5"] })
func (g *Generator) stringNumeric(args ...any) (any, error) {
	length, opts, err := lengthArg(args, 1)
	if err != nil {
		return nil, err
	}

	allowLeadingZeros := true

	var exclude []string

	if opts != nil {
		allowLeadingZeros, err = boolOption(opts, "allowLeadingZeros", true)
		if err != nil {
			return nil, err
		}

		exclude, err = stringsOption(opts, "exclude", nil)
		if err != nil {
			return nil, err
		}
	}

	pool := charPool(digitChars, exclude)
	if len(pool) == 0 {
		return nil, ErrInvalidArgument.
			With(slog.String("option", "exclude")).
			Wrap(fmt.Errorf("every digit is excluded"))
	}

	var sb strings.Builder
	sb.Grow(length)

	for i := range length {
		chars := pool

		if i == 0 && !allowLeadingZeros && length > 1 {
			chars = slices.DeleteFunc(slices.Clone(pool), func(c byte) bool {
				return c == '0'
			})
			if len(chars) == 0 {
				return nil, ErrInvalidArgument.
					With(slog.String("option", "allowLeadingZeros")).
					Wrap(fmt.Errorf("no non-zero digit available"))
			}
		}

		sb.WriteByte(pick(g.rng, chars))
	}

	return sb.String(), nil
}

// stringAlpha generates a string of random letters. Options: length and
// casing ("lower", "upper", or "mixed").
func (g *Generator) stringAlpha(args ...any) (any, error) {
	length, opts, err := lengthArg(args, 1)
	if err != nil {
		return nil, err
	}

	casing := "mixed"

	if opts != nil {
		v, ok := opts["casing"]
		if ok {
			s, ok := v.(string)
			if !ok {
				return nil, ErrInvalidArgument.
					With(slog.String("option", "casing")).
					Wrap(fmt.Errorf("expected string, got %T", v))
			}

			casing = s
		}
	}

	var chars string

	switch casing {
	case "lower":
		chars = lowerChars
	case "upper":
		chars = upperChars
	case "mixed":
		chars = lowerChars + upperChars
	default:
		return nil, ErrInvalidArgument.
			With(slog.String("option", "casing")).
			Wrap(fmt.Errorf(
				"expected one of lower, upper, or mixed; got %q", casing))
	}

	return g.sampleFrom(chars, length), nil
}

// stringAlphanumeric generates a string of random letters and digits.
func (g *Generator) stringAlphanumeric(args ...any) (any, error) {
	length, _, err := lengthArg(args, 1)
	if err != nil {
		return nil, err
	}

	return g.sampleFrom(lowerChars+upperChars+digitChars, length), nil
}

// stringSample generates a string of printable ASCII characters.
func (g *Generator) stringSample(args ...any) (any, error) {
	length, _, err := lengthArg(args, 10)
	if err != nil {
		return nil, err
	}

	const lo, hi = '!', '}'

	var sb strings.Builder
	sb.Grow(length)

	for range length {
		sb.WriteByte(byte(lo + g.rng.IntN(hi-lo+1)))
	}

	return sb.String(), nil
}

// stringUUID generates a version 4 UUID.
func (g *Generator) stringUUID(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	var b [16]byte

	hiBits := g.rng.Uint64()
	loBits := g.rng.Uint64()

	for i := range 8 {
		b[i] = byte(hiBits >> (8 * i))
		b[8+i] = byte(loBits >> (8 * i))
	}

	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10

	return fmt.Sprintf("%x-%x-%x-%x-%x",
		b[0:4], b[4:6], b[6:8], b[8:10], b[10:16]), nil
}

// sampleFrom builds a string of length random characters drawn from chars.
func (g *Generator) sampleFrom(chars string, length int) string {
	var sb strings.Builder
	sb.Grow(length)

	for range length {
		sb.WriteByte(chars[g.rng.IntN(len(chars))])
	}

	return sb.String()
}

// charPool returns the characters of chars minus any single-character
// entries of exclude.
func charPool(chars string, exclude []string) []byte {
	pool := make([]byte, 0, len(chars))

	for i := range len(chars) {
		if slices.Contains(exclude, string(chars[i])) {
			continue
		}

		pool = append(pool, chars[i])
	}

	return pool
}
