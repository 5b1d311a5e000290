package cmd

import (
	"context"

	"github.com/confabulate/confab/cli/cmd/repl"
	"github.com/confabulate/confab/log"
)

// Repl starts the interactive read-eval-print loop.
type Repl struct {
	Options
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	g, err := r.generator()
	if err != nil {
		return err
	}

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache directory undefined")
	}

	return repl.Run(ctx, g, cacheDir, log.Default())
}
