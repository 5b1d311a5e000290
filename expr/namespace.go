package expr

// Container exposes the named children of a namespace node. The external
// generator library adapts its module tree to this view; the evaluator never
// depends on the concrete shape of that tree.
type Container interface {
	// Lookup returns the child node registered under name.
	Lookup(name string) (any, bool)
}

// Callable is a namespace node that can be invoked with positional
// arguments. Argument count and type validation is the callee's concern; any
// error it returns propagates to the evaluator's caller unchanged.
type Callable interface {
	// Invoke executes the node with the given positional arguments.
	Invoke(args []any) (any, error)
}

// Map adapts a plain map to the Container interface. It is the conventional
// way to assemble a namespace tree by hand:
//
//	root := expr.Map{
//		"helpers": expr.Map{
//			"slugify": expr.Func(slugify),
//		},
//	}
type Map map[string]any

// Lookup implements Container.
func (m Map) Lookup(name string) (any, bool) {
	v, ok := m[name]

	return v, ok
}

// Func adapts an ordinary variadic function to the Callable interface.
type Func func(args ...any) (any, error)

// Invoke implements Callable.
func (f Func) Invoke(args []any) (any, error) { return f(args...) }

// lookupChild resolves name against the container view of node. Plain
// map[string]any values (such as records returned by a call) get the same
// treatment as Container implementations.
func lookupChild(node any, name string) (any, bool) {
	switch t := node.(type) {
	case Container:
		return t.Lookup(name)

	case map[string]any:
		v, ok := t[name]

		return v, ok

	default:
		return nil, false
	}
}

// asCallable returns the callable view of node, if it has one.
func asCallable(node any) (Callable, bool) {
	switch t := node.(type) {
	case Callable:
		return t, true

	case func(args ...any) (any, error):
		return Func(t), true

	default:
		return nil, false
	}
}
