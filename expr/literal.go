package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind indicates the variant of a Literal.
type Kind int

const (
	// KindString represents a quoted or unquoted string literal.
	KindString Kind = iota

	// KindNumber represents a numeric literal.
	KindNumber

	// KindBool represents a boolean literal.
	KindBool

	// KindNull represents the null literal.
	KindNull

	// KindArray represents an ordered sequence of literals.
	KindArray

	// KindObject represents a mapping from string keys to literals.
	KindObject
)

// String returns a string representation of the literal kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Field is one key/value pair of an object literal. Fields keep their
// source order so parsed objects reproduce their input; duplicate keys are
// retained here and collapse last-wins during conversion.
type Field struct {
	Key   string
	Value Literal
}

// Literal is a parsed argument value.
// Exactly one of the payload fields is meaningful based on Kind.
type Literal struct {
	Kind   Kind
	Str    string    // For KindString
	Num    float64   // For KindNumber
	Bool   bool      // For KindBool
	Items  []Literal // For KindArray
	Fields []Field   // For KindObject
}

// NewString creates a string literal.
func NewString(s string) Literal { return Literal{Kind: KindString, Str: s} }

// NewNumber creates a numeric literal.
func NewNumber(n float64) Literal { return Literal{Kind: KindNumber, Num: n} }

// NewBool creates a boolean literal.
func NewBool(b bool) Literal { return Literal{Kind: KindBool, Bool: b} }

// NewNull creates a null literal.
func NewNull() Literal { return Literal{Kind: KindNull} }

// NewArray creates an array literal from the given items.
func NewArray(items ...Literal) Literal {
	return Literal{Kind: KindArray, Items: items}
}

// NewObject creates an object literal from the given fields.
func NewObject(fields ...Field) Literal {
	return Literal{Kind: KindObject, Fields: fields}
}

// Value converts the literal to its native Go representation: string,
// float64, bool, nil, []any, or map[string]any. Objects and arrays convert
// recursively; duplicate object keys collapse with the last occurrence
// winning.
func (l Literal) Value() any {
	switch l.Kind {
	case KindString:
		return l.Str

	case KindNumber:
		return l.Num

	case KindBool:
		return l.Bool

	case KindNull:
		return nil

	case KindArray:
		items := make([]any, len(l.Items))
		for i, item := range l.Items {
			items[i] = item.Value()
		}

		return items

	case KindObject:
		obj := make(map[string]any, len(l.Fields))
		for _, f := range l.Fields {
			obj[f.Key] = f.Value.Value()
		}

		return obj

	default:
		return nil
	}
}

// parseArgument parses one call argument: a standard literal when one
// applies, otherwise the relaxed unquoted-string fallback. The fallback is
// available only here, at the top level of an argument position.
func (p *parser) parseArgument() (Literal, error) {
	p.skipWhitespace()

	switch p.peek() {
	case '"':
		s, err := p.parseQuotedString()
		if err != nil {
			return Literal{}, err
		}

		return NewString(s), nil

	case '{':
		return p.parseObject()

	case '[':
		return p.parseArray()
	}

	if lit, ok := p.scanKeyword(); ok {
		return lit, nil
	}

	if lit, ok := p.scanNumber(); ok {
		return lit, nil
	}

	return p.parseUnquoted(), nil
}

// parseValue parses one literal inside a composite (array or object), where
// the unquoted fallback does not apply.
func (p *parser) parseValue() (Literal, error) {
	p.skipWhitespace()

	switch p.peek() {
	case '"':
		s, err := p.parseQuotedString()
		if err != nil {
			return Literal{}, err
		}

		return NewString(s), nil

	case '{':
		return p.parseObject()

	case '[':
		return p.parseArray()
	}

	if lit, ok := p.scanKeyword(); ok {
		return lit, nil
	}

	if lit, ok := p.scanNumber(); ok {
		return lit, nil
	}

	return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
		"invalid literal at offset %d", p.pos))
}

// scanKeyword matches true, false, or null as whole tokens. Partial matches
// such as "trueish" are left untouched for the caller to handle.
func (p *parser) scanKeyword() (Literal, bool) {
	rest := p.input[p.pos:]

	for _, kw := range []struct {
		text string
		lit  Literal
	}{
		{"true", NewBool(true)},
		{"false", NewBool(false)},
		{"null", NewNull()},
	} {
		if strings.HasPrefix(rest, kw.text) &&
			isValueBoundary(rest, len(kw.text)) {
			p.pos += len(kw.text)

			return kw.lit, true
		}
	}

	return Literal{}, false
}

// scanNumber matches a numeric run: an optional leading '-', digits, and an
// optional '.' followed by digits. A malformed run (1.2.3, 10x, a bare '-')
// is never truncated to a shorter numeric prefix; it simply does not match.
func (p *parser) scanNumber() (Literal, bool) {
	i := p.pos

	if i < len(p.input) && p.input[i] == '-' {
		i++
	}

	digits := 0
	for i < len(p.input) && isDigit(p.input[i]) {
		i++
		digits++
	}

	if digits == 0 {
		return Literal{}, false
	}

	if i < len(p.input) && p.input[i] == '.' {
		j := i + 1

		frac := 0
		for j < len(p.input) && isDigit(p.input[j]) {
			j++
			frac++
		}

		if frac == 0 {
			return Literal{}, false
		}

		i = j
	}

	if !isValueBoundary(p.input, i) {
		return Literal{}, false
	}

	num, err := strconv.ParseFloat(p.input[p.pos:i], 64)
	if err != nil {
		return Literal{}, false
	}

	p.pos = i

	return NewNumber(num), true
}

// parseQuotedString parses a double-quoted string with JSON escape
// sequences. The cursor must be on the opening quote.
func (p *parser) parseQuotedString() (string, error) {
	start := p.pos

	p.advance() // consume opening '"'

	var sb strings.Builder

	for !p.eof() {
		ch := p.peek()

		switch ch {
		case '"':
			p.advance()

			return sb.String(), nil

		case '\\':
			p.advance()

			if p.eof() {
				continue // loop exits: unterminated
			}

			esc := p.peek()
			p.advance()

			switch esc {
			case '"', '\\', '/':
				sb.WriteRune(esc)
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}

				sb.WriteRune(r)
			default:
				return "", ErrSyntax.Wrap(fmt.Errorf(
					"invalid escape sequence '\\%c' at offset %d",
					esc, p.pos))
			}

		default:
			sb.WriteRune(ch)
			p.advance()
		}
	}

	return "", ErrSyntax.Wrap(fmt.Errorf(
		"unterminated string literal at offset %d", start))
}

// parseUnicodeEscape parses the four hex digits following a \u escape.
func (p *parser) parseUnicodeEscape() (rune, error) {
	const hexDigits = 4

	if p.pos+hexDigits > len(p.input) {
		return 0, ErrSyntax.Wrap(fmt.Errorf(
			"incomplete unicode escape at offset %d", p.pos))
	}

	code, err := strconv.ParseUint(p.input[p.pos:p.pos+hexDigits], 16, 32)
	if err != nil {
		return 0, ErrSyntax.Wrap(fmt.Errorf(
			"invalid unicode escape at offset %d", p.pos))
	}

	p.pos += hexDigits

	return rune(code), nil
}

// parseObject parses an object literal. The cursor must be on the opening
// brace.
func (p *parser) parseObject() (Literal, error) {
	start := p.pos

	p.advance() // consume '{'

	fields := make([]Field, 0, 4)

	p.skipWhitespace()

	if p.peek() == '}' {
		p.advance()

		return NewObject(fields...), nil
	}

	for {
		p.skipWhitespace()

		if p.eof() {
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"unterminated object literal at offset %d", start))
		}

		if p.peek() != '"' {
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"object key at offset %d must be a quoted string", p.pos))
		}

		key, err := p.parseQuotedString()
		if err != nil {
			return Literal{}, err
		}

		p.skipWhitespace()

		if !p.expect(':') {
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"expected colon (':') after object key %q at offset %d",
				key, p.pos))
		}

		value, err := p.parseValue()
		if err != nil {
			return Literal{}, err
		}

		fields = append(fields, Field{Key: key, Value: value})

		p.skipWhitespace()

		if p.eof() {
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"unterminated object literal at offset %d", start))
		}

		switch p.peek() {
		case ',':
			p.advance()

		case '}':
			p.advance()

			return NewObject(fields...), nil

		default:
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"unexpected character %q in object literal at offset %d:"+
					" expected comma (',') or closing brace ('}')",
				p.peek(), p.pos))
		}
	}
}

// parseArray parses an array literal. The cursor must be on the opening
// bracket.
func (p *parser) parseArray() (Literal, error) {
	start := p.pos

	p.advance() // consume '['

	items := make([]Literal, 0, 4)

	p.skipWhitespace()

	if p.peek() == ']' {
		p.advance()

		return NewArray(items...), nil
	}

	for {
		value, err := p.parseValue()
		if err != nil {
			return Literal{}, err
		}

		items = append(items, value)

		p.skipWhitespace()

		if p.eof() {
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"unterminated array literal at offset %d", start))
		}

		switch p.peek() {
		case ',':
			p.advance()

		case ']':
			p.advance()

			return NewArray(items...), nil

		default:
			return Literal{}, ErrSyntax.Wrap(fmt.Errorf(
				"unexpected character %q in array literal at offset %d:"+
					" expected comma (',') or closing bracket (']')",
				p.peek(), p.pos))
		}
	}
}

// parseUnquoted consumes the relaxed unquoted-string fallback: everything up
// to the first comma or closing parenthesis, taken verbatim with no trimming
// and no escape processing. Parentheses and commas therefore cannot appear
// inside such a value.
func (p *parser) parseUnquoted() Literal {
	start := p.pos

	for !p.eof() {
		ch := p.peek()
		if ch == ',' || ch == ')' {
			break
		}

		p.advance()
	}

	return NewString(p.input[start:p.pos])
}

// isValueBoundary reports whether offset i of s terminates a bare literal
// token (keyword or number).
func isValueBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}

	switch s[i] {
	case ' ', '\t', '\n', '\r', ',', ')', ']', '}':
		return true
	}

	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
