package token

import (
	"fmt"
	"strconv"
)

// Kind is the lexical class of a token. The set is closed and ordinals are
// stable: EOF stays 0 and new kinds are only appended.
type Kind uint8

const (
	EOF Kind = iota
	KEYWORD
	OPEN_PAREN
	CLOSE_PAREN
	OPEN_BRACE
	CLOSE_BRACE
	COMMA
	FUNC_RETURN_TYPE_DECL // reserved
	NUMBER_LITERAL
	STRING_LITERAL // reserved for quoted text
	EQUAL
	COLON
	OPERATOR_PLUS
	OPERATOR_MINUS
	OPERATOR_MULT
	OPERATOR_DIV
	OPERATOR_MOD
	OPERATOR_DOT
	OPERATOR_ARROW
	OPERATOR_EQUALS
	IDENTIFIER

	kindCount
)

var kindNames = [kindCount]string{
	EOF:                   "EOF",
	KEYWORD:               "KEYWORD",
	OPEN_PAREN:            "OPEN_PAREN",
	CLOSE_PAREN:           "CLOSE_PAREN",
	OPEN_BRACE:            "OPEN_BRACE",
	CLOSE_BRACE:           "CLOSE_BRACE",
	COMMA:                 "COMMA",
	FUNC_RETURN_TYPE_DECL: "FUNC_RETURN_TYPE_DECL",
	NUMBER_LITERAL:        "NUMBER_LITERAL",
	STRING_LITERAL:        "STRING_LITERAL",
	EQUAL:                 "EQUAL",
	COLON:                 "COLON",
	OPERATOR_PLUS:         "OPERATOR_PLUS",
	OPERATOR_MINUS:        "OPERATOR_MINUS",
	OPERATOR_MULT:         "OPERATOR_MULT",
	OPERATOR_DIV:          "OPERATOR_DIV",
	OPERATOR_MOD:          "OPERATOR_MOD",
	OPERATOR_DOT:          "OPERATOR_DOT",
	OPERATOR_ARROW:        "OPERATOR_ARROW",
	OPERATOR_EQUALS:       "OPERATOR_EQUALS",
	IDENTIFIER:            "IDENTIFIER",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// HasValue reports whether tokens of this kind carry their source text.
func (k Kind) HasValue() bool {
	switch k {
	case KEYWORD, IDENTIFIER, NUMBER_LITERAL, STRING_LITERAL:
		return true
	default:
		return false
	}
}

// Kinds returns every kind in ordinal order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := EOF; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for k := EOF; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k >= kindCount {
		return nil, fmt.Errorf("invalid token kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Location is the span a token covers. Offset and Length are in bytes; Line
// and Column are 1-based, Column counting bytes from the line start.
type Location struct {
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// End is the offset just past the last consumed byte.
func (l Location) End() int {
	return l.Offset + l.Length
}

// Token represents a lexical token with its kind, text and position.
// Value is only set for kinds where Kind.HasValue is true.
type Token struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Location Location `json:"location" yaml:"location"`
}

func (t Token) String() string {
	if t.Kind.HasValue() {
		return fmt.Sprintf("%s(%s)@%d+%d", t.Kind, strconv.Quote(t.Value), t.Location.Offset, t.Location.Length)
	}
	return fmt.Sprintf("%s@%d+%d", t.Kind, t.Location.Offset, t.Location.Length)
}
