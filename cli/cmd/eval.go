package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/confabulate/confab/log"
)

// Eval evaluates one or more template expressions and prints the results.
type Eval struct {
	Options

	Expressions []string `arg:"" help:"Template expressions to evaluate" name:"expression"`

	Count int  `default:"1" help:"Number of values to generate per expression" short:"n"`
	JSON  bool `            help:"Emit each result as a JSON value"            short:"j"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if e.Count < 1 {
		e.Count = 1
	}

	g, err := e.generator()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "eval",
		slog.Int("expressions", len(e.Expressions)),
		slog.Int("count", e.Count),
		slog.String("locale", e.Locale),
		slog.Bool("seeded", e.Seed != nil),
	)

	for range e.Count {
		for _, expression := range e.Expressions {
			result, err := g.Evaluate(expression)
			if err != nil {
				return err
			}

			line, err := e.render(result)
			if err != nil {
				return err
			}

			fmt.Println(line)
		}
	}

	return nil
}

// render converts one evaluated value to its output line.
func (e *Eval) render(v any) (string, error) {
	if e.JSON {
		raw, err := json.Marshal(v)
		if err != nil {
			return "", ErrJSONMarshal.Wrap(err)
		}

		return string(raw), nil
	}

	return formatResult(v), nil
}

// formatResult renders an evaluated value for plain text output. Composite
// values fall back to their JSON form so they stay one line.
func formatResult(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}

		return string(raw)
	}
}
