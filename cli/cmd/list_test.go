package cmd

import "testing"

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		want   bool
	}{
		{"empty_prefix", "string.uuid", "", true},
		{"exact", "string.uuid", "string.uuid", true},
		{"module", "string.uuid", "string", true},
		{"nested", "airline.airline.name", "airline.airline", true},
		{"partial_segment", "strings.other", "string", false},
		{"different", "number.int", "string", false},
		{"prefix_longer", "string", "string.uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesPrefix(tt.path, tt.prefix)
			if got != tt.want {
				t.Errorf("matchesPrefix(%q, %q) = %v, want %v",
					tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}
