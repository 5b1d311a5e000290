package expr

import (
	"fmt"
	"log/slog"

	"github.com/confabulate/confab/log"
)

// Evaluate parses expression and resolves it against root, returning the
// final value. The root is typically an [Map] tree of namespaces whose
// leaves are [Callable] generator methods.
//
// Evaluation is a pure function of its two inputs plus whatever side effects
// the invoked leaf functions perform (such as consuming randomness); those
// side effects are opaque to the evaluator. No state persists between calls,
// so re-entrant evaluation from inside a callee is safe.
func Evaluate(expression string, root any) (any, error) {
	segments, err := Parse(expression)
	if err != nil {
		return nil, err
	}

	log.Trace("evaluate expression",
		slog.String("expression", expression),
		slog.Int("segments", len(segments)),
	)

	return evaluate(expression, segments, root)
}

// evaluate walks segments strictly left to right, maintaining a current
// value initialized to root. Property access descends through the container
// view; a call suffix invokes the callable view with its converted argument
// list and continues from the returned value. A trailing callable that was
// never explicitly called is returned as a reference, not executed.
func evaluate(expression string, segments []Segment, root any) (any, error) {
	current := root

	for _, seg := range segments {
		node, ok := lookupChild(current, seg.Name)
		if !ok {
			return nil, resolveError(expression)
		}

		if !seg.Call {
			current = node

			continue
		}

		fn, ok := asCallable(node)
		if !ok {
			return nil, resolveError(expression)
		}

		args := make([]any, len(seg.Args))
		for i, arg := range seg.Args {
			args[i] = arg.Value()
		}

		result, err := fn.Invoke(args)
		if err != nil {
			// Errors raised by the invoked function belong to its contract
			// with the caller: propagate unchanged, no wrapping.
			return nil, err
		}

		current = result
	}

	return current, nil
}

// resolveError reports an unresolvable expression. The message echoes the
// complete original expression string, not the failing sub-path, so callers
// see the exact text they submitted.
func resolveError(expression string) error {
	return ErrResolve.
		Wrap(fmt.Errorf("'%s'", expression)).
		With(slog.String("expression", expression))
}
