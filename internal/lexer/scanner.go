// Package lexer converts protc source text into a token.Sequence.
package lexer

import (
	"slices"
	"sync"

	"github.com/DjordjeVuckovic/proteus/internal/token"
)

// Scanner performs a single left-to-right pass over an in-memory buffer.
// It never modifies the buffer and is not safe for concurrent use.
type Scanner struct {
	source    []byte
	cursor    int
	line      int
	lineStart int
	diags     []Diagnostic
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	s := &Scanner{}
	s.Reset(source)
	return s
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
	s.diags = s.diags[:0]
}

// Diagnostics returns the problems found so far.
func (s *Scanner) Diagnostics() []Diagnostic {
	return slices.Clone(s.diags)
}

// Next returns the next token. At the end of the buffer it returns an EOF
// token, and keeps returning it on every later call.
func (s *Scanner) Next() token.Token {
	for s.cursor < len(s.source) {
		start := s.cursor
		ch := s.source[start]

		switch classes[ch] {
		case classSingle:
			return s.emit(singleKinds[ch], start, 1)

		case classLookahead:
			if ch == '-' {
				if s.peek() == '>' {
					return s.emit(token.OPERATOR_ARROW, start, 2)
				}
				return s.emit(token.OPERATOR_MINUS, start, 1)
			}
			if s.peek() == '=' {
				return s.emit(token.OPERATOR_EQUALS, start, 2)
			}
			return s.emit(token.EQUAL, start, 1)

		case classWhitespace:
			s.cursor++
			if ch == '\n' {
				s.line++
				s.lineStart = s.cursor
			}

		case classLetter:
			return s.scanIdentifier()

		case classDigit:
			return s.scanNumber()

		default:
			s.diags = append(s.diags, Diagnostic{
				Code:   CodeUnrecognizedByte,
				Offset: start,
				Byte:   ch,
				Line:   s.line,
				Column: start - s.lineStart + 1,
			})
			s.cursor++
		}
	}

	return s.emit(token.EOF, len(s.source), 0)
}

// scanIdentifier consumes the longest run of letters, digits and
// underscores starting at a letter.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.cursor
	end := start + 1
	for end < len(s.source) && isIdentPart(s.source[end]) {
		end++
	}

	kind := token.IDENTIFIER
	if token.IsKeyword(string(s.source[start:end])) {
		kind = token.KEYWORD
	}
	return s.emit(kind, start, end-start)
}

// scanNumber consumes digits and at most one '.'. A second '.' is left for
// the next call, so "3.14.15" yields 3.14, '.', 15.
func (s *Scanner) scanNumber() token.Token {
	start := s.cursor
	end := start + 1
	dotSeen := false
	for end < len(s.source) {
		ch := s.source[end]
		if ch == '.' && !dotSeen {
			dotSeen = true
		} else if !isDigit(ch) {
			break
		}
		end++
	}
	return s.emit(token.NUMBER_LITERAL, start, end-start)
}

func (s *Scanner) emit(kind token.Kind, start, length int) token.Token {
	tok := token.Token{
		Kind: kind,
		Location: token.Location{
			Offset: start,
			Length: length,
			Line:   s.line,
			Column: start - s.lineStart + 1,
		},
	}
	if kind.HasValue() {
		tok.Value = string(s.source[start : start+length])
	}
	s.cursor = start + length
	return tok
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

// Result is the outcome of tokenizing one buffer.
type Result struct {
	Tokens      token.Sequence `json:"tokens"`
	Diagnostics []Diagnostic   `json:"diagnostics"`
}

// HasErrors reports whether any byte was skipped as unrecognized.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

var scanners = sync.Pool{
	New: func() any { return NewScanner(nil) },
}

// Tokenize scans the whole of src. It is safe for concurrent use.
func Tokenize(src []byte) *Result {
	s := scanners.Get().(*Scanner)
	s.Reset(src)

	res := &Result{
		Tokens:      token.Collect(s),
		Diagnostics: s.Diagnostics(),
	}
	if res.Diagnostics == nil {
		res.Diagnostics = []Diagnostic{}
	}

	s.Reset(nil)
	scanners.Put(s)
	return res
}

func TokenizeString(src string) *Result {
	return Tokenize([]byte(src))
}
