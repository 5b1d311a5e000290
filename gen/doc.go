// Package gen provides the fake-data generator modules behind confab's
// template expressions.
//
// A [Generator] owns a seeded pseudo-random source and a namespace tree of
// generator methods grouped by module (string, number, helpers, airline,
// person, location, internet, word). Expressions address methods through
// that tree:
//
//	g := gen.New(gen.WithSeed(42))
//
//	v, err := g.Evaluate(`string.numeric({ "length": 5 })`)
//	s, err := g.Fake("Flight {{airline.airline.iataCode}} {{string.numeric(4)}}")
//
// Reference data (airline records, name and word lists) is embedded YAML
// under data/ and decoded once per process.
//
// All methods of a single Generator share one mutex-guarded random source,
// so a Generator is safe for concurrent use; evaluations are independent and
// re-entrant (helpers.fake evaluates nested expressions against the same
// tree).
package gen
