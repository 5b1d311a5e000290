// Package cli contains the command line interface for confab.
//
// # Usage
//
// Expressions are evaluated by the default command:
//
//	confab 'string.numeric({ "length": 5 })'
//	confab --seed=42 --count=3 person.fullName
//
// Subcommands:
//   - eval: evaluate template expressions (default when args are given)
//   - list: print the dotted paths of all generator methods
//   - repl: start the interactive read-eval-print loop
//   - init: write a configuration file with current flag values
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolveYAML]) that
// reads YAML config files and converts them to Kong flag values. The init
// command writes such a file to the user config directory.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag
// (go build -tags pprof):
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/confab/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	confab --log-level=debug --pprof-mode=cpu 'airline.flightNumber()'
//
//	# Reproducible output
//	confab --seed=1 --count=10 internet.email
package cli
