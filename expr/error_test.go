package expr

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  NewError("bad input"),
			want: "bad input",
		},
		{
			name: "message with wrapped cause",
			err:  NewError("bad input").Wrap(fmt.Errorf("at offset 3")),
			want: "bad input: at offset 3",
		},
		{
			name: "wrapped cause only",
			err:  NewError("").Wrap(fmt.Errorf("at offset 3")),
			want: "at offset 3",
		},
		{
			name: "empty",
			err:  NewError(""),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Sentinels still match after Wrap and With extend them.
func TestError_SentinelMatching(t *testing.T) {
	err := ErrSyntax.
		Wrap(fmt.Errorf("unexpected character")).
		With(slog.Int("offset", 7))

	if !errors.Is(err, ErrSyntax) {
		t.Error("extended error no longer matches its sentinel")
	}

	if errors.Is(err, ErrResolve) {
		t.Error("extended error matches an unrelated sentinel")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")

	err := ErrResolve.Wrap(cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
}

// Wrap and With return new values; the sentinel itself never changes.
func TestError_Immutability(t *testing.T) {
	before := ErrSyntax.Error()

	_ = ErrSyntax.Wrap(fmt.Errorf("x")).With(slog.String("k", "v"))

	if got := ErrSyntax.Error(); got != before {
		t.Errorf("sentinel mutated: %q != %q", got, before)
	}
}

func TestError_LogValue(t *testing.T) {
	err := NewError("bad input").
		Wrap(fmt.Errorf("cause")).
		With(slog.String("expression", "a.b"))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group value, got %v", v.Kind())
	}

	keys := map[string]bool{}
	for _, attr := range v.Group() {
		keys[attr.Key] = true
	}

	for _, want := range []string{"error", "cause", "expression"} {
		if !keys[want] {
			t.Errorf("log value missing %q attribute", want)
		}
	}
}
