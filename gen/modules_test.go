package gen

import (
	"errors"
	"strings"
	"testing"
)

func TestAirlineFlightNumber(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("default length range", func(t *testing.T) {
		for range 64 {
			got, err := g.Evaluate("airline.flightNumber()")
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			s := got.(string)
			if len(s) < 1 || len(s) > 4 {
				t.Fatalf("len(%q) = %d, want 1 to 4", s, len(s))
			}

			if s[0] == '0' {
				t.Fatalf("%q has a leading zero", s)
			}
		}
	})

	t.Run("fixed length", func(t *testing.T) {
		got, err := g.Evaluate(`airline.flightNumber({ "length": 4 })`)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		if s := got.(string); len(s) != 4 {
			t.Errorf("len(%q) = %d, want 4", s, len(s))
		}
	})

	t.Run("length out of range", func(t *testing.T) {
		_, err := g.Evaluate("airline.flightNumber(9)")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestAirlineRecordLocator(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Evaluate("airline.recordLocator()")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	s := got.(string)
	if len(s) != 6 {
		t.Fatalf("len(%q) = %d, want 6", s, len(s))
	}

	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			t.Errorf("%q contains non-uppercase byte %q", s, s[i])
		}
	}
}

func TestPersonNames(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("full name joins first and last", func(t *testing.T) {
		got, err := g.Evaluate("person.fullName()")
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		parts := strings.SplitN(got.(string), " ", 2)
		if len(parts) != 2 {
			t.Fatalf("got %q, want two space-separated names", got)
		}
	})

	t.Run("first name comes from the locale table", func(t *testing.T) {
		got, err := g.Evaluate("person.firstName()")
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		found := false

		for _, name := range g.data.Person.FirstNames {
			if name == got {
				found = true

				break
			}
		}

		if !found {
			t.Errorf("%v not present in locale table", got)
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := g.Evaluate("person.firstName(1)")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestLocationStreetAddress(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Evaluate("location.streetAddress()")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	parts := strings.Fields(got.(string))
	if len(parts) < 3 {
		t.Fatalf("got %q, want number, name, and suffix", got)
	}

	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			t.Errorf("building number %q is not numeric", parts[0])
		}
	}
}

func TestLocationZipCode(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Evaluate("location.zipCode()")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	s := got.(string)
	if len(s) != 5 {
		t.Fatalf("len(%q) = %d, want 5", s, len(s))
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			t.Errorf("%q contains non-digit %q", s, s[i])
		}
	}
}

func TestInternetEmail(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Evaluate("internet.email()")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	s := got.(string)

	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		t.Fatalf("got %q, want user@domain", s)
	}

	if s != strings.ToLower(s) {
		t.Errorf("%q is not lowercase", s)
	}
}

func TestInternetURL(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Evaluate("internet.url()")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	s := got.(string)
	if !strings.HasPrefix(s, "https://") || !strings.Contains(s[8:], ".") {
		t.Errorf("got %q, want https://host.tld", s)
	}
}

func TestWordWords(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name  string
		input string
		count int
	}{
		{name: "default count", input: "word.words()", count: 3},
		{name: "explicit count", input: "word.words(5)", count: 5},
		{name: "zero count", input: "word.words(0)", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Evaluate(tt.input)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tt.input, err)
			}

			words := strings.Fields(got.(string))
			if len(words) != tt.count {
				t.Errorf("got %d words, want %d", len(words), tt.count)
			}
		})
	}
}
