package expr

import (
	"reflect"
	"testing"
)

func TestLiteral_Value(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want any
	}{
		{
			name: "string",
			lit:  NewString("abc"),
			want: "abc",
		},
		{
			name: "number",
			lit:  NewNumber(2.5),
			want: 2.5,
		},
		{
			name: "bool",
			lit:  NewBool(true),
			want: true,
		},
		{
			name: "null",
			lit:  NewNull(),
			want: nil,
		},
		{
			name: "array converts recursively",
			lit:  NewArray(NewNumber(1), NewString("a"), NewNull()),
			want: []any{1.0, "a", nil},
		},
		{
			name: "object converts recursively",
			lit: NewObject(
				Field{Key: "n", Value: NewNumber(5)},
				Field{Key: "xs", Value: NewArray(NewString("5"))},
			),
			want: map[string]any{"n": 5.0, "xs": []any{"5"}},
		},
		{
			name: "duplicate keys collapse last-wins",
			lit: NewObject(
				Field{Key: "a", Value: NewNumber(1)},
				Field{Key: "a", Value: NewNumber(2)},
			),
			want: map[string]any{"a": 2.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lit.Value()

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Value() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "String"},
		{KindNumber, "Number"},
		{KindBool, "Bool"},
		{KindNull, "Null"},
		{KindArray, "Array"},
		{KindObject, "Object"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
