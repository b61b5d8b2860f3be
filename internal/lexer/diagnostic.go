package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CodeUnrecognizedByte marks a byte the scanner skipped because no token
// starts with it.
const CodeUnrecognizedByte = "L0001"

// Diagnostic is a lexical problem found while scanning. The scan carries on
// past it.
type Diagnostic struct {
	Code   string `json:"code"`
	Offset int    `json:"offset"`
	Byte   byte   `json:"byte"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message())
}

// Message describes the problem without its position.
func (d Diagnostic) Message() string {
	return fmt.Sprintf("unrecognized byte %s (0x%02x)", quoteByte(d.Byte), d.Byte)
}

func quoteByte(b byte) string {
	if b < 0x80 && strconv.IsPrint(rune(b)) {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("'\\x%02x'", b)
}

// WriteDiagnostic renders d the way compilers usually do:
//
//	main.pr:1:5: error[L0001]: unrecognized byte '#' (0x23)
//	   1 | fn f#() {}
//	     |     ^
func WriteDiagnostic(w io.Writer, name string, idx *LineIndex, d Diagnostic) {
	fmt.Fprintf(w, "%s:%d:%d: error[%s]: %s\n", name, d.Line, d.Column, d.Code, d.Message())

	if idx == nil {
		return
	}
	text := strings.TrimRight(string(idx.Line(d.Line)), "\r")
	gutter := strconv.Itoa(d.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(w, " %s | %s\n", gutter, text)
	fmt.Fprintf(w, " %s | %s^\n", pad, caretIndent(text, d.Column))
}

// caretIndent keeps tabs so the caret lines up under the offending byte.
func caretIndent(line string, column int) string {
	var b strings.Builder
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
