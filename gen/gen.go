package gen

import (
	"slices"

	"github.com/confabulate/confab/expr"
)

// Generator owns a seeded random source, one locale's reference data, and
// the namespace tree that template expressions resolve against.
type Generator struct {
	rng  *source
	data *dataset
	root expr.Map
}

// config holds the construction options for a Generator.
type config struct {
	locale string
	seed   uint64
	seeded bool
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithSeed fixes the random sequence, making all draws reproducible. Two
// Generators with the same seed and locale produce identical output for
// identical call sequences.
func WithSeed(seed uint64) Option {
	return func(cfg config) config {
		cfg.seed = seed
		cfg.seeded = true

		return cfg
	}
}

// WithLocale selects the embedded reference data table. The default is
// [DefaultLocale].
func WithLocale(locale string) Option {
	return func(cfg config) config {
		cfg.locale = locale

		return cfg
	}
}

// New creates a Generator and assembles its namespace tree.
func New(opts ...Option) (*Generator, error) {
	cfg := apply(config{locale: DefaultLocale}, opts...)

	data, err := loadDataset(cfg.locale)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		rng:  newSource(cfg.seed, cfg.seeded),
		data: data,
	}

	g.root = expr.Map{
		"string":   g.stringModule(),
		"number":   g.numberModule(),
		"helpers":  g.helpersModule(),
		"airline":  g.airlineModule(),
		"person":   g.personModule(),
		"location": g.locationModule(),
		"internet": g.internetModule(),
		"word":     g.wordModule(),
	}

	return g, nil
}

// Namespace returns the root of the generator's namespace tree. Callers may
// graft additional modules onto the returned map before evaluating.
func (g *Generator) Namespace() expr.Map { return g.root }

// Reseed restarts the random sequence from the given seed. Draws after a
// Reseed match those of a fresh generator built with the same seed. It is
// safe to call while other goroutines are evaluating.
func (g *Generator) Reseed(seed uint64) {
	g.rng.reseed(seed)
}

// Evaluate resolves one template expression against the generator's
// namespace tree.
func (g *Generator) Evaluate(expression string) (any, error) {
	return expr.Evaluate(expression, g.root)
}

// Paths returns the sorted dotted paths of all invocable methods in the
// namespace tree. It backs `confab list` and REPL completion.
func (g *Generator) Paths() []string {
	var paths []string

	var walk func(prefix string, m expr.Map)

	walk = func(prefix string, m expr.Map) {
		for name, child := range m {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}

			if sub, ok := child.(expr.Map); ok {
				walk(path, sub)

				continue
			}

			paths = append(paths, path)
		}
	}

	walk("", g.root)
	slices.Sort(paths)

	return paths
}
