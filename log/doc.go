// Package log wraps log/slog with the small set of conveniences confab
// needs: a TRACE level below DEBUG, a text/json format switch, a colorized
// pretty handler for interactive terminals, and a process-wide default
// logger configurable at any time with functional options.
//
// Typical use:
//
//	log.Config(
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//	)
//
//	log.Info("generator ready", slog.Uint64("seed", seed))
//
// All logging functions accept slog.Attr values rather than alternating
// key/value pairs, and the module's error types implement slog.LogValuer so
// errors expand into structured groups.
package log
