package lexer

import "github.com/DjordjeVuckovic/proteus/internal/token"

// class is the dispatch category of a single source byte.
type class uint8

const (
	classOther class = iota
	classWhitespace
	classLetter
	classDigit
	classSingle    // one-byte token, kind from singleKinds
	classLookahead // '-' and '=', which may pair with the following byte
)

var (
	classes     = buildClassTable()
	singleKinds = buildSingleKinds()
)

func buildClassTable() [256]class {
	var t [256]class
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		t[c] = classWhitespace
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = classLetter
		t[c-'a'+'A'] = classLetter
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = classDigit
	}
	for _, c := range []byte("(){},:+*/%.") {
		t[c] = classSingle
	}
	t['-'] = classLookahead
	t['='] = classLookahead
	return t
}

func buildSingleKinds() [256]token.Kind {
	var k [256]token.Kind
	k['('] = token.OPEN_PAREN
	k[')'] = token.CLOSE_PAREN
	k['{'] = token.OPEN_BRACE
	k['}'] = token.CLOSE_BRACE
	k[','] = token.COMMA
	k[':'] = token.COLON
	k['+'] = token.OPERATOR_PLUS
	k['*'] = token.OPERATOR_MULT
	k['/'] = token.OPERATOR_DIV
	k['%'] = token.OPERATOR_MOD
	k['.'] = token.OPERATOR_DOT
	return k
}

func isDigit(ch byte) bool {
	return classes[ch] == classDigit
}

func isIdentPart(ch byte) bool {
	c := classes[ch]
	return c == classLetter || c == classDigit || ch == '_'
}
