// Package cmd implements the confab subcommands.
//
// Each command is a kong-compatible struct whose Run method receives the
// [context.Context] assembled by the cli package. The kong parse context and
// shared paths travel inside that context; commands retrieve them with the
// unexported accessors in this package.
//
// Commands that generate data embed [Options], which carries the --seed and
// --locale flags and builds the generator they evaluate against.
package cmd
