package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/confabulate/confab/log"
)

// List prints the dotted paths of all generator methods.
type List struct {
	Options

	Prefix string `arg:"" help:"Restrict output to paths under this dotted prefix" optional:""`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := l.generator()
	if err != nil {
		return err
	}

	paths := g.Paths()

	printed := 0

	for _, path := range paths {
		if !matchesPrefix(path, l.Prefix) {
			continue
		}

		fmt.Println(path)

		printed++
	}

	log.DebugContext(ctx, "list",
		slog.String("prefix", l.Prefix),
		slog.Int("total", len(paths)),
		slog.Int("printed", printed),
	)

	return nil
}

// matchesPrefix reports whether path falls under the dotted prefix. An empty
// prefix matches everything; "string" matches "string.uuid" but not
// "strings.other".
func matchesPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}

	return len(path) == len(prefix) || path[len(prefix)] == '.'
}
