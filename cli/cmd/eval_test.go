package cmd

import "testing"

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", "hello"},
		{"string_not_quoted", `say "hi"`, `say "hi"`},
		{"int", 42, "42"},
		{"float_whole", float64(7), "7"},
		{"float_fraction", 3.14, "3.14"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"slice", []any{"a", float64(1)}, `["a",1]`},
		{"map", map[string]any{"k": "v"}, `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatResult(tt.value)
			if got != tt.want {
				t.Errorf("formatResult(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvalRender_JSON(t *testing.T) {
	e := &Eval{JSON: true}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string_quoted", "hello", `"hello"`},
		{"number", float64(5), "5"},
		{"nil", nil, "null"},
		{"object", map[string]any{"name": "KLM"}, `{"name":"KLM"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.render(tt.value)
			if err != nil {
				t.Fatalf("render(%#v) error: %v", tt.value, err)
			}

			if got != tt.want {
				t.Errorf("render(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvalRender_PlainText(t *testing.T) {
	e := &Eval{}

	got, err := e.render("hello")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if got != "hello" {
		t.Errorf("render = %q, want %q", got, "hello")
	}
}
