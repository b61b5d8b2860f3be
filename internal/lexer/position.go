package lexer

import (
	"slices"

	"github.com/DjordjeVuckovic/proteus/internal/token"
)

// LineIndex maps byte offsets to 1-based line and column numbers using the
// sorted offsets of every '\n' in the buffer.
type LineIndex struct {
	source   []byte
	newlines []int
}

func NewLineIndex(source []byte) *LineIndex {
	var newlines []int
	for i, ch := range source {
		if ch == '\n' {
			newlines = append(newlines, i)
		}
	}
	return &LineIndex{source: source, newlines: newlines}
}

// LineCount is the number of lines; a trailing newline opens an empty last
// line.
func (x *LineIndex) LineCount() int {
	return len(x.newlines) + 1
}

// Position resolves offset. Offsets past the end clamp to len(source).
func (x *LineIndex) Position(offset int) (line, column int) {
	offset = max(0, min(offset, len(x.source)))

	// number of newlines strictly before offset
	n, _ := slices.BinarySearch(x.newlines, offset)
	return n + 1, offset - x.lineStart(n+1) + 1
}

// Line returns the text of the 1-based line n without its newline, or nil
// when n is out of range.
func (x *LineIndex) Line(n int) []byte {
	if n < 1 || n > x.LineCount() {
		return nil
	}
	end := len(x.source)
	if n <= len(x.newlines) {
		end = x.newlines[n-1]
	}
	return x.source[x.lineStart(n):end]
}

func (x *LineIndex) lineStart(n int) int {
	if n <= 1 {
		return 0
	}
	return x.newlines[n-2] + 1
}

// Resolve returns a copy of the tokens with Line and Column recomputed from
// their offsets.
func (x *LineIndex) Resolve(seq token.Sequence) []token.Token {
	tokens := seq.Slice()
	for i := range tokens {
		tokens[i].Location.Line, tokens[i].Location.Column = x.Position(tokens[i].Location.Offset)
	}
	return tokens
}
