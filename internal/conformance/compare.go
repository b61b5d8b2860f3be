package conformance

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
)

// Mismatch is one differing field. Index is -1 for whole-sequence problems.
type Mismatch struct {
	Index    int    `json:"index"`
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

func (m Mismatch) String() string {
	if m.Index < 0 {
		return fmt.Sprintf("%s: expected %s, got %s", m.Field, m.Expected, m.Actual)
	}
	return fmt.Sprintf("token %d %s: expected %s, got %s", m.Index, m.Field, m.Expected, m.Actual)
}

// Compare checks actual against expected token by token. A count difference
// is reported once and the common prefix is still compared.
func Compare(expected, actual []token.Token) []Mismatch {
	var out []Mismatch
	if len(expected) != len(actual) {
		out = append(out, Mismatch{
			Index:    -1,
			Field:    "count",
			Expected: strconv.Itoa(len(expected)),
			Actual:   strconv.Itoa(len(actual)),
		})
	}

	for i := range min(len(expected), len(actual)) {
		exp, got := expected[i], actual[i]
		add := func(field, e, a string) {
			if e != a {
				out = append(out, Mismatch{Index: i, Field: field, Expected: e, Actual: a})
			}
		}

		add("kind", exp.Kind.String(), got.Kind.String())
		add("value", strconv.Quote(exp.Value), strconv.Quote(got.Value))
		add("offset", strconv.Itoa(exp.Location.Offset), strconv.Itoa(got.Location.Offset))
		add("length", strconv.Itoa(exp.Location.Length), strconv.Itoa(got.Location.Length))
		if exp.Location.Line != 0 {
			add("line", strconv.Itoa(exp.Location.Line), strconv.Itoa(got.Location.Line))
		}
		if exp.Location.Column != 0 {
			add("column", strconv.Itoa(exp.Location.Column), strconv.Itoa(got.Location.Column))
		}
	}
	return out
}

func compareSkipped(expected []int, diags []lexer.Diagnostic) []Mismatch {
	if expected == nil {
		return nil
	}
	got := make([]int, len(diags))
	for i, d := range diags {
		got[i] = d.Offset
	}
	if slices.Equal(expected, got) {
		return nil
	}
	return []Mismatch{{
		Index:    -1,
		Field:    "skipped",
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(got),
	}}
}
