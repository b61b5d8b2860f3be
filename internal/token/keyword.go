package token

import "slices"

// keywords must stay sorted; lookups binary search it.
var keywords = []string{
	"fn",
	"return",
}

// IsKeyword reports whether the identifier-shaped text is a reserved word.
// Matching is exact and case-sensitive.
func IsKeyword(s string) bool {
	_, found := slices.BinarySearch(keywords, s)
	return found
}

// Keywords returns a copy of the keyword set in sorted order.
func Keywords() []string {
	return slices.Clone(keywords)
}
