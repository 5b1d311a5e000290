package gen

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

// Argument decoding helpers. Expression arguments arrive as native values
// produced by the evaluator: string, float64, bool, nil, []any, and
// map[string]any. Generator methods own all argument validation; the
// evaluator performs none.

// atMost rejects calls carrying more than max arguments.
func atMost(args []any, max int) error {
	if len(args) > max {
		return ErrInvalidArgument.
			With(slog.Int("max", max), slog.Int("got", len(args))).
			Wrap(fmt.Errorf("too many arguments"))
	}

	return nil
}

// stringArg extracts the required string argument at index i.
func stringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", ErrInvalidArgument.
			With(slog.String("argument", name)).
			Wrap(fmt.Errorf("missing required argument %d", i+1))
	}

	s, ok := args[i].(string)
	if !ok {
		return "", ErrInvalidArgument.
			With(slog.String("argument", name)).
			Wrap(fmt.Errorf("expected string, got %T", args[i]))
	}

	return s, nil
}

// objectArg extracts the required object argument at index i.
func objectArg(args []any, i int, name string) (map[string]any, error) {
	if i >= len(args) {
		return nil, ErrInvalidArgument.
			With(slog.String("argument", name)).
			Wrap(fmt.Errorf("missing required argument %d", i+1))
	}

	m, ok := args[i].(map[string]any)
	if !ok {
		return nil, ErrInvalidArgument.
			With(slog.String("argument", name)).
			Wrap(fmt.Errorf("expected object, got %T", args[i]))
	}

	return m, nil
}

// intOption reads an integral number option, falling back when absent.
func intOption(opts map[string]any, key string, fallback int) (int, error) {
	v, ok := opts[key]
	if !ok {
		return fallback, nil
	}

	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, ErrInvalidArgument.
			With(slog.String("option", key)).
			Wrap(fmt.Errorf("expected integer, got %v", v))
	}

	return int(f), nil
}

// floatOption reads a number option, falling back when absent.
func floatOption(
	opts map[string]any,
	key string,
	fallback float64,
) (float64, error) {
	v, ok := opts[key]
	if !ok {
		return fallback, nil
	}

	f, ok := v.(float64)
	if !ok {
		return 0, ErrInvalidArgument.
			With(slog.String("option", key)).
			Wrap(fmt.Errorf("expected number, got %T", v))
	}

	return f, nil
}

// boolOption reads a boolean option, falling back when absent.
func boolOption(opts map[string]any, key string, fallback bool) (bool, error) {
	v, ok := opts[key]
	if !ok {
		return fallback, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, ErrInvalidArgument.
			With(slog.String("option", key)).
			Wrap(fmt.Errorf("expected boolean, got %T", v))
	}

	return b, nil
}

// stringsOption reads a string-array option, falling back when absent.
func stringsOption(
	opts map[string]any,
	key string,
	fallback []string,
) ([]string, error) {
	v, ok := opts[key]
	if !ok {
		return fallback, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, ErrInvalidArgument.
			With(slog.String("option", key)).
			Wrap(fmt.Errorf("expected array, got %T", v))
	}

	out := make([]string, len(items))

	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, ErrInvalidArgument.
				With(slog.String("option", key)).
				Wrap(fmt.Errorf("expected array of strings, got %T", item))
		}

		out[i] = s
	}

	return out, nil
}

// lengthArg decodes the common `method(length)` / `method({ "length": n })`
// calling convention shared by the string module.
func lengthArg(args []any, fallback int) (int, map[string]any, error) {
	if len(args) == 0 {
		return fallback, nil, nil
	}

	if err := atMost(args, 1); err != nil {
		return 0, nil, err
	}

	switch v := args[0].(type) {
	case float64:
		if v != math.Trunc(v) || v < 0 {
			return 0, nil, ErrInvalidArgument.
				With(slog.String("option", "length")).
				Wrap(fmt.Errorf(
					"expected non-negative integer, got %s",
					strconv.FormatFloat(v, 'f', -1, 64)))
		}

		return int(v), nil, nil

	case map[string]any:
		length, err := intOption(v, "length", fallback)
		if err != nil {
			return 0, nil, err
		}

		if length < 0 {
			return 0, nil, ErrInvalidArgument.
				With(slog.String("option", "length")).
				Wrap(fmt.Errorf("expected non-negative integer, got %d",
					length))
		}

		return length, v, nil

	default:
		return 0, nil, ErrInvalidArgument.
			Wrap(fmt.Errorf("expected number or object, got %T", args[0]))
	}
}
