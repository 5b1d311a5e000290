// Package expr implements the template expression language used to address
// generator methods at runtime.
//
// An expression is a dotted path through a tree of namespaces, where any
// path segment may carry a call suffix with JSON-like arguments:
//
//	airline.airline().name
//	string.numeric({ "length": 5, "allowLeadingZeros": true })
//	helpers.mustache("{{foo}}", { "foo": "bar" })
//
// # Grammar
//
// Informal EBNF:
//
//	Expression   → Segment ('.' Segment)* EOF
//	Segment      → Identifier CallSuffix?
//	CallSuffix   → '(' ArgumentList? ')'
//	ArgumentList → Argument (',' Argument)*
//	Argument     → Literal | UnquotedString
//	Literal      → String | Number | 'true' | 'false' | 'null'
//	             | Array | Object
//	Array        → '[' (Literal (',' Literal)*)? ']'
//	Object       → '{' (String ':' Literal (',' String ':' Literal)*)? '}'
//
// UnquotedString is a relaxed fallback available only at the top level of an
// argument position: when no standard literal applies, everything up to the
// next comma or closing parenthesis is taken verbatim as a string, so simple
// values need no quoting:
//
//	helpers.slugify(This Works)
//
// A bare identifier is a property access, never a call. A trailing segment
// that resolves to a callable is returned as a reference without being
// invoked; only an explicit call suffix invokes.
//
// # Namespaces
//
// Expressions are resolved against an opaque object graph supplied per call.
// The evaluator sees the graph only through two single-method views,
// [Container] and [Callable], with [Map] and [Func] adapting ordinary maps
// and functions. A node may implement both views, which is how record
// pickers support property access without an intervening call:
//
//	airline.airline.iataCode
//
// # Errors
//
// Evaluation either fully resolves to a value or fails: there are no partial
// results. Malformed input yields [ErrSyntax] (or [ErrEmptyExpression]);
// unknown names and uninvocable call targets yield [ErrResolve], whose
// message echoes the complete original expression. Errors returned by an
// invoked function propagate to the caller unchanged.
package expr
