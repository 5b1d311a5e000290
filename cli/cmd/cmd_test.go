package cmd

import (
	"errors"
	"testing"

	"github.com/confabulate/confab/gen"
)

func TestOptionsGenerator_Seeded(t *testing.T) {
	seed := uint64(42)
	opts := Options{Seed: &seed, Locale: "en"}

	a, err := opts.generator()
	if err != nil {
		t.Fatalf("generator() error: %v", err)
	}

	b, err := opts.generator()
	if err != nil {
		t.Fatalf("generator() error: %v", err)
	}

	const expression = `string.alphanumeric({ "length": 16 })`

	va, err := a.Evaluate(expression)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	vb, err := b.Evaluate(expression)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	if va != vb {
		t.Errorf("same seed produced %v and %v", va, vb)
	}
}

func TestOptionsGenerator_UnknownLocale(t *testing.T) {
	opts := Options{Locale: "xx"}

	_, err := opts.generator()
	if !errors.Is(err, gen.ErrUnknownLocale) {
		t.Errorf("generator() error = %v, want %v", err, gen.ErrUnknownLocale)
	}
}
