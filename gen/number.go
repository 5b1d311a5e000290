package gen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/confabulate/confab/expr"
)

// defaultIntMax bounds number.int when no max is given. It matches the
// largest integer a float64 argument can carry exactly.
const defaultIntMax = 1<<53 - 1

// numberModule builds the `number` namespace.
func (g *Generator) numberModule() expr.Map {
	return expr.Map{
		"int":   expr.Func(g.numberInt),
		"float": expr.Func(g.numberFloat),
	}
}

// numberInt generates a random integer.
//
// Accepted forms:
//
//	number.int()                          → [0, 2^53)
//	number.int(10)                        → [0, 10]
//	number.int({ "min": -5, "max": 5 })   → [-5, 5]
func (g *Generator) numberInt(args ...any) (any, error) {
	minVal, maxVal := 0, defaultIntMax

	if len(args) > 0 {
		if err := atMost(args, 1); err != nil {
			return nil, err
		}

		switch v := args[0].(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, ErrInvalidArgument.
					With(slog.String("option", "max")).
					Wrap(fmt.Errorf("expected integer, got %v", v))
			}

			maxVal = int(v)

		case map[string]any:
			var err error

			minVal, err = intOption(v, "min", minVal)
			if err != nil {
				return nil, err
			}

			maxVal, err = intOption(v, "max", maxVal)
			if err != nil {
				return nil, err
			}

		default:
			return nil, ErrInvalidArgument.
				Wrap(fmt.Errorf("expected number or object, got %T", args[0]))
		}
	}

	if maxVal < minVal {
		return nil, ErrInvalidArgument.
			With(slog.Int("min", minVal), slog.Int("max", maxVal)).
			Wrap(fmt.Errorf("max is less than min"))
	}

	return minVal + g.rng.IntN(maxVal-minVal+1), nil
}

// numberFloat generates a random float.
//
// Accepted forms:
//
//	number.float()
//	number.float({ "min": 0, "max": 100, "fractionDigits": 2 })
func (g *Generator) numberFloat(args ...any) (any, error) {
	minVal, maxVal := 0.0, 1.0
	fractionDigits := -1

	if len(args) > 0 {
		if err := atMost(args, 1); err != nil {
			return nil, err
		}

		opts, err := objectArg(args, 0, "options")
		if err != nil {
			return nil, err
		}

		minVal, err = floatOption(opts, "min", minVal)
		if err != nil {
			return nil, err
		}

		maxVal, err = floatOption(opts, "max", maxVal)
		if err != nil {
			return nil, err
		}

		fractionDigits, err = intOption(opts, "fractionDigits", fractionDigits)
		if err != nil {
			return nil, err
		}
	}

	if maxVal < minVal {
		return nil, ErrInvalidArgument.
			With(
				slog.Float64("min", minVal),
				slog.Float64("max", maxVal),
			).
			Wrap(fmt.Errorf("max is less than min"))
	}

	v := minVal + g.rng.Float64()*(maxVal-minVal)

	if fractionDigits >= 0 {
		scale := math.Pow10(fractionDigits)
		v = math.Round(v*scale) / scale
	}

	return v, nil
}
