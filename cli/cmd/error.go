package cmd

import (
	"log/slog"
	"strings"
)

// Command failure sentinels. Commands wrap these with the triggering cause
// and slog attributes before returning them up to main.
var (
	// ErrJSONMarshal is returned when an evaluated value cannot be encoded
	// for --json output.
	ErrJSONMarshal = NewError("cannot encode result as JSON")

	// ErrYAMLMarshal is returned when the collected flag values cannot be
	// encoded for the configuration file.
	ErrYAMLMarshal = NewError("cannot encode configuration as YAML")

	// ErrWriteConfig is returned when the configuration file cannot be
	// written.
	ErrWriteConfig = NewError("cannot write configuration file")

	// ErrFileExists is the cause attached to ErrWriteConfig when the target
	// already exists and --force was not given.
	ErrFileExists = NewError("file exists (use --force to overwrite)")
)

// Error is the command error type, carrying a message, an optional cause,
// and slog attributes for structured logging. It mirrors the error types of
// the expr and gen packages so main logs every failure the same way.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates an Error with the given base message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error renders "<msg>: <cause>", dropping whichever part is absent.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error sharing this error's base message,
// so errors.Is matches the package sentinels after Wrap or With.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of the error with err as its cause. The receiver is
// not modified; sentinels stay pristine.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With returns a copy of the error with the attributes appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(merged, e.attrs...)
	merged = append(merged, attrs...)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: merged,
	}
}
