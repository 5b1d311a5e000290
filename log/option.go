package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithOutput sets the destination writer for log messages.
func WithOutput(w io.Writer) Option {
	return func(cfg config) config {
		cfg.output = w

		return cfg
	}
}

// WithLevel sets the minimum severity of messages to emit.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the output format of log messages.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the timestamp layout. Layout names from the time
// package ("RFC3339", "Kitchen", ...) are accepted as well as raw layout
// strings; an empty layout suppresses timestamps entirely.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		cfg.timeLayout = namedTimeLayout(layout)

		return cfg
	}
}

// WithCaller toggles file:line caller information on log records.
func WithCaller(enable bool) Option {
	return func(cfg config) config {
		cfg.caller = enable

		return cfg
	}
}

// WithPretty toggles the colorized text handler. It has no effect on the
// JSON format.
func WithPretty(enable bool) Option {
	return func(cfg config) config {
		cfg.pretty = enable

		return cfg
	}
}

// namedTimeLayout maps time package layout constant names to their values.
// Unrecognized input is returned unchanged, treated as a raw layout.
func namedTimeLayout(name string) string {
	switch name {
	case "ANSIC":
		return "Mon Jan _2 15:04:05 2006"
	case "UnixDate":
		return "Mon Jan _2 15:04:05 MST 2006"
	case "RFC822":
		return "02 Jan 06 15:04 MST"
	case "RFC850":
		return "Monday, 02-Jan-06 15:04:05 MST"
	case "RFC1123":
		return "Mon, 02 Jan 2006 15:04:05 MST"
	case "RFC3339":
		return "2006-01-02T15:04:05Z07:00"
	case "RFC3339Nano":
		return "2006-01-02T15:04:05.999999999Z07:00"
	case "Kitchen":
		return "3:04PM"
	case "Stamp":
		return "Jan _2 15:04:05"
	case "StampMilli":
		return "Jan _2 15:04:05.000"
	case "TimeOnly":
		return "15:04:05"
	case "DateTime":
		return "2006-01-02 15:04:05"
	case "DateOnly":
		return "2006-01-02"
	default:
		return name
	}
}
