package token

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Sequence is the immutable result of scanning one buffer. It always ends
// with exactly one EOF token.
type Sequence struct {
	tokens []Token
}

// NewSequence takes ownership of tokens. It panics when tokens does not end
// with a single EOF token, which is a scanner bug rather than bad input.
func NewSequence(tokens []Token) Sequence {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		panic("token: sequence must end with EOF")
	}
	if i := slices.IndexFunc(tokens, func(t Token) bool { return t.Kind == EOF }); i != len(tokens)-1 {
		panic(fmt.Sprintf("token: EOF at index %d before end of sequence", i))
	}
	return Sequence{tokens: tokens}
}

func (s Sequence) Len() int {
	return len(s.tokens)
}

// At returns the i-th token; ok is false when i is out of range.
func (s Sequence) At(i int) (tok Token, ok bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Last returns the terminating EOF token.
func (s Sequence) Last() Token {
	if len(s.tokens) == 0 {
		return Token{Kind: EOF}
	}
	return s.tokens[len(s.tokens)-1]
}

// All iterates the tokens in source order.
func (s Sequence) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range s.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Slice returns a copy of the tokens.
func (s Sequence) Slice() []Token {
	return slices.Clone(s.tokens)
}

func (s Sequence) Kinds() []Kind {
	kinds := make([]Kind, len(s.tokens))
	for i, t := range s.tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	if s.tokens == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.tokens)
}

func (s Sequence) MarshalYAML() (interface{}, error) {
	return s.tokens, nil
}
