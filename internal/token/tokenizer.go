package token

// Source yields successive tokens. Once EOF has been returned every further
// call returns EOF again.
type Source interface {
	Next() Token
}

// Collect drains src into a Sequence.
func Collect(src Source) Sequence {
	var tokens []Token
	for {
		tok := src.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return NewSequence(tokens)
		}
	}
}
