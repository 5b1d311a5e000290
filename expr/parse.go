package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Segment is one dotted step of an expression path.
// A segment without a call suffix is a property access; one with a call
// suffix invokes the named value with Args.
type Segment struct {
	Name string
	Call bool
	Args []Literal // Present only if Call
}

// Parse parses an expression into its ordered sequence of path segments.
// Segment order is the left-to-right order of the input and determines
// traversal order during evaluation.
func Parse(expression string) ([]Segment, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	p := &parser{input: expression}

	segments := make([]Segment, 0, 4)

	for {
		p.skipWhitespace()

		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}

		segments = append(segments, seg)

		p.skipWhitespace()

		if p.eof() {
			return segments, nil
		}

		if seg.Call {
			// Only a dot may continue the chain here. The diagnostic lists
			// '(' as well because a call result is itself a value, but
			// back-to-back call suffixes are not part of the grammar.
			switch ch := p.peek(); ch {
			case '.':
				p.advance()

			case '(':
				return nil, ErrSyntax.Wrap(fmt.Errorf(
					"chained call suffix at offset %d:"+
						" separate call suffixes with a dot ('.')", p.pos))

			default:
				return nil, ErrSyntax.Wrap(fmt.Errorf(
					"unexpected character %q after call suffix:"+
						" expected dot ('.'), opening parenthesis ('('),"+
						" or nothing", ch))
			}
		} else if !p.expect('.') {
			return nil, ErrSyntax.Wrap(fmt.Errorf(
				"unexpected character %q at offset %d:"+
					" expected dot ('.') or end of expression",
				p.peek(), p.pos))
		}
	}
}

// parser holds the parse state: the full expression and a byte cursor.
type parser struct {
	input string
	pos   int
}

// parseSegment parses: Identifier CallSuffix?.
func (p *parser) parseSegment() (Segment, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return Segment{}, err
	}

	seg := Segment{Name: name}

	p.skipWhitespace()

	if p.peek() == '(' {
		args, err := p.parseArguments()
		if err != nil {
			return Segment{}, err
		}

		seg.Call = true
		seg.Args = args
	}

	return seg, nil
}

// parseArguments parses a call suffix: '(' ArgumentList? ')'. The cursor
// must be on the opening parenthesis. A zero-argument call yields an empty,
// non-nil argument list.
func (p *parser) parseArguments() ([]Literal, error) {
	p.advance() // consume '('

	args := make([]Literal, 0, 2)

	p.skipWhitespace()

	if p.peek() == ')' {
		p.advance()

		return args, nil
	}

	for {
		lit, err := p.parseArgument()
		if err != nil {
			return nil, err
		}

		args = append(args, lit)

		p.skipWhitespace()

		if p.eof() {
			return nil, ErrSyntax.Wrap(fmt.Errorf(
				"unterminated argument list at offset %d", p.pos))
		}

		switch p.peek() {
		case ',':
			p.advance()

		case ')':
			p.advance()

			return args, nil

		default:
			return nil, ErrSyntax.Wrap(fmt.Errorf(
				"unexpected character %q in argument list at offset %d:"+
					" expected comma (',') or closing parenthesis (')')",
				p.peek(), p.pos))
		}
	}
}

// parseIdentifier parses an identifier token.
func (p *parser) parseIdentifier() (string, error) {
	start := p.pos

	if !isIdentifierStart(p.peek()) {
		return "", ErrSyntax.Wrap(fmt.Errorf(
			"expected identifier at offset %d", p.pos))
	}

	p.advance()

	for !p.eof() && isIdentifierContinue(p.peek()) {
		p.advance()
	}

	return p.input[start:p.pos], nil
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])

	return r
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	_, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// Character classification

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
