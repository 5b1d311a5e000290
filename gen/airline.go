package gen

import (
	"fmt"

	"github.com/confabulate/confab/expr"
)

// airlineModule builds the `airline` namespace. The record-backed entries
// are dual nodes (see recordSet): they can be called for a whole record or
// dereferenced for a single column.
func (g *Generator) airlineModule() expr.Map {
	return expr.Map{
		"airline": &recordSet{
			rng:     g.rng,
			records: g.data.Airline.Airlines,
		},
		"airplane": &recordSet{
			rng:     g.rng,
			records: g.data.Airline.Airplanes,
		},
		"flightNumber":  expr.Func(g.airlineFlightNumber),
		"recordLocator": expr.Func(g.airlineRecordLocator),
	}
}

// airlineFlightNumber generates a flight number of 1 to 4 digits without a
// leading zero. An optional { "length": n } option fixes the digit count.
func (g *Generator) airlineFlightNumber(args ...any) (any, error) {
	length, _, err := lengthArg(args, 1+g.rng.IntN(4))
	if err != nil {
		return nil, err
	}

	if length < 1 || length > 4 {
		return nil, ErrInvalidArgument.
			Wrap(fmt.Errorf("flight number length %d out of range [1, 4]",
				length))
	}

	var digits []byte

	for i := range length {
		lo := 0
		if i == 0 {
			lo = 1
		}

		digits = append(digits, byte('0'+lo+g.rng.IntN(10-lo)))
	}

	return string(digits), nil
}

// airlineRecordLocator generates a 6-character booking reference of
// uppercase letters.
func (g *Generator) airlineRecordLocator(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	const length = 6

	var locator [length]byte

	for i := range length {
		locator[i] = upperChars[g.rng.IntN(len(upperChars))]
	}

	return string(locator[:]), nil
}
