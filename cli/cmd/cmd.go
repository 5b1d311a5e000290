package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/confabulate/confab/gen"
)

// Identifiers for values shared with commands through [kong.Vars].
const (
	// ConfigIdentifier is the vars key holding the configuration file path.
	ConfigIdentifier = "config"

	// CacheIdentifier is the vars key holding the cache directory path.
	CacheIdentifier = "cache"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Options holds the generator knobs shared by every command that produces
// fake data.
type Options struct {
	Seed   *uint64 `help:"Seed the random source for reproducible output."`
	Locale string  `default:"en" help:"Locale of the embedded reference data."`
}

// generator builds a [gen.Generator] from the parsed options. A nil Seed
// leaves the source randomly seeded.
func (o Options) generator() (*gen.Generator, error) {
	opts := []gen.Option{gen.WithLocale(o.Locale)}

	if o.Seed != nil {
		opts = append(opts, gen.WithSeed(*o.Seed))
	}

	return gen.New(opts...)
}
