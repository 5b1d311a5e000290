package gen

import "github.com/confabulate/confab/expr"

// personModule builds the `person` namespace.
func (g *Generator) personModule() expr.Map {
	return expr.Map{
		"firstName": expr.Func(g.personFirstName),
		"lastName":  expr.Func(g.personLastName),
		"fullName":  expr.Func(g.personFullName),
	}
}

func (g *Generator) personFirstName(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Person.FirstNames), nil
}

func (g *Generator) personLastName(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Person.LastNames), nil
}

func (g *Generator) personFullName(args ...any) (any, error) {
	if err := atMost(args, 0); err != nil {
		return nil, err
	}

	return pick(g.rng, g.data.Person.FirstNames) + " " +
		pick(g.rng, g.data.Person.LastNames), nil
}
