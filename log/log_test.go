package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logged  []string
		dropped []string
	}{
		{
			name:    "info drops trace and debug",
			level:   LevelInfo,
			logged:  []string{"info msg", "warn msg", "error msg"},
			dropped: []string{"trace msg", "debug msg"},
		},
		{
			name:  "trace passes everything",
			level: LevelTrace,
			logged: []string{
				"trace msg", "debug msg", "info msg", "warn msg", "error msg",
			},
		},
		{
			name:    "error drops the rest",
			level:   LevelError,
			logged:  []string{"error msg"},
			dropped: []string{"trace msg", "debug msg", "info msg", "warn msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			l := Make(buf, WithLevel(tt.level), WithPretty(false))

			l.Trace("trace msg")
			l.Debug("debug msg")
			l.Info("info msg")
			l.Warn("warn msg")
			l.Error("error msg")

			out := buf.String()

			for _, want := range tt.logged {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}

			for _, drop := range tt.dropped {
				if strings.Contains(out, drop) {
					t.Errorf("output contains suppressed %q:\n%s", drop, out)
				}
			}
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithFormat(FormatJSON))

	l.Info("structured", slog.String("key", "value"), slog.Int("n", 7))

	var record map[string]any

	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want structured", record["msg"])
	}

	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}

	if record["n"] != 7.0 {
		t.Errorf("n = %v, want 7", record["n"])
	}
}

// The trace level renders as TRACE, not as slog's DEBUG-4.
func TestLogger_TraceLevelLabel(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithFormat(FormatJSON), WithLevel(LevelTrace))

	l.Trace("tracing")

	out := buf.String()

	if !strings.Contains(out, "TRACE") {
		t.Errorf("output missing TRACE label:\n%s", out)
	}

	if strings.Contains(out, "DEBUG-4") {
		t.Errorf("output leaks raw slog level:\n%s", out)
	}
}

func TestLogger_With_AddsAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithFormat(FormatJSON)).
		With(slog.String("component", "eval"))

	l.Info("attached")

	if !strings.Contains(buf.String(), `"component":"eval"`) {
		t.Errorf("output missing bound attribute:\n%s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithLevel(LevelError))

	if got := l.Level(); got != LevelError {
		t.Fatalf("Level() = %v, want error", got)
	}

	wrapped := l.Wrap(WithLevel(LevelDebug), WithFormat(FormatJSON))

	if got := wrapped.Level(); got != LevelDebug {
		t.Errorf("wrapped Level() = %v, want debug", got)
	}

	if got := wrapped.Format(); got != FormatJSON {
		t.Errorf("wrapped Format() = %v, want json", got)
	}

	// The original is unchanged.
	if got := l.Level(); got != LevelError {
		t.Errorf("original Level() changed to %v", got)
	}
}

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Trace("a")
	l.Debug("b")
	l.Info("c")
	l.Warn("d")
	l.Error("e")

	if got := l.Level(); got != DefaultLevel {
		t.Errorf("zero-value Level() = %v, want default", got)
	}

	if got := l.Format(); got != DefaultFormat {
		t.Errorf("zero-value Format() = %v, want default", got)
	}
}

func TestPrettyHandler_Output(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf,
		WithPretty(true),
		WithTimeLayout(""),
		WithLevel(LevelTrace),
	)

	l.Warn("watch out", slog.String("path", "a.b"))

	out := buf.String()

	if !strings.Contains(out, "WRN") {
		t.Errorf("output missing level label:\n%s", out)
	}

	if !strings.Contains(out, "watch out") {
		t.Errorf("output missing message:\n%s", out)
	}

	if !strings.Contains(out, "path") || !strings.Contains(out, "a.b") {
		t.Errorf("output missing attribute:\n%s", out)
	}
}

func TestPrettyHandler_GroupsFlattenDotted(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithPretty(true), WithTimeLayout(""))

	l.Info("grouped",
		slog.Group("req", slog.String("method", "GET")),
	)

	if !strings.Contains(buf.String(), "req.method") {
		t.Errorf("output missing flattened group key:\n%s", buf.String())
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"plain", false},
		{"with space", true},
		{"tab\there", true},
		{`has"quote`, true},
		{"key=value", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := needsQuoting(tt.input); got != tt.want {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultLogger_Config(t *testing.T) {
	buf := new(bytes.Buffer)

	// Restore the process-wide default when done.
	orig := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = orig
		defaultMu.Unlock()
	}()

	Config(WithOutput(buf), WithFormat(FormatJSON), WithLevel(LevelDebug))

	Debug("through default", slog.String("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "through default") ||
		!strings.Contains(out, `"k":"v"`) {
		t.Errorf("default logger output missing record:\n%s", out)
	}
}
