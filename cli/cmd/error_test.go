package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cause := fmt.Errorf("disk full")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message_only", NewError("cannot write configuration file"),
			"cannot write configuration file"},
		{"with_cause", NewError("cannot write configuration file").Wrap(cause),
			"cannot write configuration file: disk full"},
		{"empty", NewError(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorSentinelMatching(t *testing.T) {
	err := ErrWriteConfig.
		With(slog.String("file", "config.yaml")).
		Wrap(ErrFileExists)

	if !errors.Is(err, ErrWriteConfig) {
		t.Error("wrapped error does not match ErrWriteConfig")
	}

	if !errors.Is(err, ErrFileExists) {
		t.Error("wrapped error does not match its ErrFileExists cause")
	}

	if errors.Is(err, ErrJSONMarshal) {
		t.Error("wrapped error must not match an unrelated sentinel")
	}
}

func TestErrorSentinelImmutability(t *testing.T) {
	derived := ErrJSONMarshal.
		Wrap(fmt.Errorf("unsupported type")).
		With(slog.String("expression", "number.int()"))

	if errors.Unwrap(ErrJSONMarshal) != nil {
		t.Error("Wrap modified the sentinel's cause")
	}

	if len(ErrJSONMarshal.attrs) != 0 {
		t.Error("With modified the sentinel's attributes")
	}

	if errors.Unwrap(derived) == nil || len(derived.attrs) != 1 {
		t.Error("derived error missing cause or attributes")
	}
}
