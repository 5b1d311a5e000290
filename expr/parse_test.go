package expr

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse_Paths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "single property",
			input: "person",
			want:  []Segment{{Name: "person"}},
		},
		{
			name:  "dotted path",
			input: "person.firstName",
			want:  []Segment{{Name: "person"}, {Name: "firstName"}},
		},
		{
			name:  "zero-argument call",
			input: "person.firstName()",
			want: []Segment{
				{Name: "person"},
				{Name: "firstName", Call: true, Args: []Literal{}},
			},
		},
		{
			name:  "call then property",
			input: "airline.airline().name",
			want: []Segment{
				{Name: "airline"},
				{Name: "airline", Call: true, Args: []Literal{}},
				{Name: "name"},
			},
		},
		{
			name:  "property after call-free path",
			input: "airline.airline.iataCode",
			want: []Segment{
				{Name: "airline"},
				{Name: "airline"},
				{Name: "iataCode"},
			},
		},
		{
			name:  "underscore identifiers",
			input: "_mod.snake_case()",
			want: []Segment{
				{Name: "_mod"},
				{Name: "snake_case", Call: true, Args: []Literal{}},
			},
		},
		{
			name:  "surrounding whitespace",
			input: "  person . firstName ()  ",
			want: []Segment{
				{Name: "person"},
				{Name: "firstName", Call: true, Args: []Literal{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Arguments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Literal
	}{
		{
			name:  "number",
			input: "string.numeric(5)",
			want:  []Literal{NewNumber(5)},
		},
		{
			name:  "negative float",
			input: "number.float(-2.5)",
			want:  []Literal{NewNumber(-2.5)},
		},
		{
			name:  "quoted string",
			input: `helpers.slugify("hello world")`,
			want:  []Literal{NewString("hello world")},
		},
		{
			name:  "quoted string with escapes",
			input: `helpers.slugify("line\none \"two\" A")`,
			want:  []Literal{NewString("line\none \"two\" A")},
		},
		{
			name:  "keywords",
			input: "f(true, false, null)",
			want:  []Literal{NewBool(true), NewBool(false), NewNull()},
		},
		{
			name:  "array",
			input: `f([1, "a", true])`,
			want: []Literal{NewArray(
				NewNumber(1), NewString("a"), NewBool(true),
			)},
		},
		{
			name:  "object",
			input: `string.numeric({ "length": 5, "allowLeadingZeros": true })`,
			want: []Literal{NewObject(
				Field{Key: "length", Value: NewNumber(5)},
				Field{Key: "allowLeadingZeros", Value: NewBool(true)},
			)},
		},
		{
			name:  "nested composite",
			input: `f({ "exclude": ["5", "7"], "opts": { "n": 1 } })`,
			want: []Literal{NewObject(
				Field{
					Key:   "exclude",
					Value: NewArray(NewString("5"), NewString("7")),
				},
				Field{
					Key: "opts",
					Value: NewObject(
						Field{Key: "n", Value: NewNumber(1)},
					),
				},
			)},
		},
		{
			name:  "multiple positional arguments",
			input: `helpers.mustache("{{foo}}", { "foo": "bar" })`,
			want: []Literal{
				NewString("{{foo}}"),
				NewObject(Field{Key: "foo", Value: NewString("bar")}),
			},
		},
		{
			name:  "unquoted string fallback",
			input: "helpers.slugify(This Works)",
			want:  []Literal{NewString("This Works")},
		},
		{
			name:  "unquoted keeps inner quotes and braces",
			input: "f(not {json} at all)",
			want:  []Literal{NewString("not {json} at all")},
		},
		{
			name:  "malformed number falls back to unquoted",
			input: "f(1.2.3)",
			want:  []Literal{NewString("1.2.3")},
		},
		{
			name:  "partial keyword falls back to unquoted",
			input: "f(trueish)",
			want:  []Literal{NewString("trueish")},
		},
		{
			name:  "duplicate object keys kept in order",
			input: `f({ "a": 1, "a": 2 })`,
			want: []Literal{NewObject(
				Field{Key: "a", Value: NewNumber(1)},
				Field{Key: "a", Value: NewNumber(2)},
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			last := segments[len(segments)-1]
			if !last.Call {
				t.Fatalf("expected final segment of %q to be a call", tt.input)
			}

			if !reflect.DeepEqual(last.Args, tt.want) {
				t.Errorf("args = %#v, want %#v", last.Args, tt.want)
			}
		})
	}
}

func TestParse_EmptyExpression(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrEmptyExpression) {
		t.Errorf("expected ErrEmptyExpression, got %v", err)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading dot", input: ".foo"},
		{name: "trailing dot", input: "foo."},
		{name: "double dot", input: "foo..bar"},
		{name: "digit-led identifier", input: "1foo"},
		{name: "unterminated call", input: "foo.bar("},
		{name: "unterminated call with argument", input: "foo.bar(1"},
		{name: "unterminated string", input: `foo.bar("abc`},
		{name: "unterminated object", input: `foo.bar({ "a": 1`},
		{name: "unterminated array", input: "foo.bar([1, 2"},
		{name: "unquoted object key", input: "foo.bar({ a: 1 })"},
		{name: "missing colon", input: `foo.bar({ "a" 1 })`},
		{name: "malformed number in array", input: "foo.bar([1.2.3])"},
		{name: "chained call suffixes", input: "foo.bar()()"},
		{name: "stray character after property", input: "foo bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q): expected ErrSyntax, got %v",
					tt.input, err)
			}
		})
	}
}

// The diagnostic for a bad continuation after a call suffix names the
// offending character and every acceptable alternative.
func TestParse_TrailingCharacterDiagnostic(t *testing.T) {
	_, err := Parse("a.b()c")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	msg := err.Error()

	for _, want := range []string{
		"'c'", "dot ('.')", "opening parenthesis ('(')", "nothing",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %s", msg, want)
		}
	}
}

func TestParse_ZeroArgumentCallHasEmptyArgs(t *testing.T) {
	segments, err := Parse("string.uuid()")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	last := segments[len(segments)-1]
	if !last.Call {
		t.Fatal("expected a call segment")
	}

	if last.Args == nil || len(last.Args) != 0 {
		t.Errorf("expected empty non-nil args, got %#v", last.Args)
	}
}
