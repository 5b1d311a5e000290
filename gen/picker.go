package gen

// recordSet is a namespace node backed by a list of records. It implements
// both of the evaluator's node views:
//
//   - invoked, it returns one random record as a map, so a chained property
//     reads a column of that record: airline.airline().name
//   - looked up as a container, it returns one column of a random record
//     directly, without an intervening call: airline.airline.iataCode
//
// Both forms draw from the same reference data.
type recordSet struct {
	rng     *source
	records []map[string]any
}

// Invoke implements expr.Callable.
func (r *recordSet) Invoke([]any) (any, error) {
	return pick(r.rng, r.records), nil
}

// Lookup implements expr.Container.
func (r *recordSet) Lookup(field string) (any, bool) {
	v, ok := pick(r.rng, r.records)[field]

	return v, ok
}
