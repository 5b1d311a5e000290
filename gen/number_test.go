package gen

import (
	"errors"
	"math"
	"testing"
)

func TestNumberInt(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name     string
		input    string
		min, max float64
	}{
		{
			name:  "no arguments",
			input: "number.int()",
			min:   0,
			max:   1<<53 - 1,
		},
		{
			name:  "positional max",
			input: "number.int(10)",
			min:   0,
			max:   10,
		},
		{
			name:  "min and max",
			input: `number.int({ "min": -5, "max": 5 })`,
			min:   -5,
			max:   5,
		},
		{
			name:  "degenerate range",
			input: `number.int({ "min": 3, "max": 3 })`,
			min:   3,
			max:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 32 {
				got, err := g.Evaluate(tt.input)
				if err != nil {
					t.Fatalf("Evaluate(%q): %v", tt.input, err)
				}

				n, ok := got.(int)
				if !ok {
					t.Fatalf("expected int, got %T", got)
				}

				if float64(n) < tt.min || float64(n) > tt.max {
					t.Errorf("%d outside [%v, %v]", n, tt.min, tt.max)
				}
			}
		})
	}
}

func TestNumberInt_Errors(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "max below min", input: `number.int({ "min": 5, "max": 1 })`},
		{name: "fractional max", input: "number.int(1.5)"},
		{name: "non-numeric option", input: `number.int({ "min": "low" })`},
		{name: "wrong argument type", input: `number.int("10")`},
		{name: "too many arguments", input: "number.int(1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Evaluate(tt.input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Evaluate(%q): expected ErrInvalidArgument, got %v",
					tt.input, err)
			}
		})
	}
}

func TestNumberFloat(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("default unit interval", func(t *testing.T) {
		for range 32 {
			got, err := g.Evaluate("number.float()")
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			f := got.(float64)
			if f < 0 || f >= 1 {
				t.Errorf("%v outside [0, 1)", f)
			}
		}
	})

	t.Run("bounded with rounding", func(t *testing.T) {
		const input = `number.float(` +
			`{ "min": 10, "max": 20, "fractionDigits": 2 })`

		for range 32 {
			got, err := g.Evaluate(input)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			f := got.(float64)
			if f < 10 || f > 20 {
				t.Errorf("%v outside [10, 20]", f)
			}

			if scaled := f * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Errorf("%v not rounded to 2 fraction digits", f)
			}
		}
	})

	t.Run("max below min", func(t *testing.T) {
		_, err := g.Evaluate(`number.float({ "min": 2, "max": 1 })`)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
