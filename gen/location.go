package gen

import (
	"strconv"

	"github.com/confabulate/confab/expr"
)

// locationModule builds the `location` namespace.
func (g *Generator) locationModule() expr.Map {
	return expr.Map{
		"city":          expr.Func(g.locationCity),
		"country":       expr.Func(g.locationCountry),
		"streetAddress": expr.Func(g.locationStreetAddress),
		"zipCode":       expr.Func(g.locationZipCode),
	}
}

func (g *Generator) locationCity(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Location.Cities), nil
}

func (g *Generator) locationCountry(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Location.Countries), nil
}

// locationStreetAddress composes a building number, a surname-derived street
// name, and a street suffix.
func (g *Generator) locationStreetAddress(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	number := 1 + g.rng.IntN(9999)

	return strconv.Itoa(number) + " " +
		pick(g.rng, g.data.Person.LastNames) + " " +
		pick(g.rng, g.data.Location.StreetSuffixes), nil
}

// locationZipCode generates a 5-digit postal code. Leading zeros are valid.
func (g *Generator) locationZipCode(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	const length = 5

	var code [length]byte

	for i := range length {
		code[i] = digitChars[g.rng.IntN(len(digitChars))]
	}

	return string(code[:]), nil
}
