package conformance

import "github.com/DjordjeVuckovic/proteus/internal/token"

// Suite is a named list of scanner cases loaded from YAML.
type Suite struct {
	Name        string `yaml:"name" schema:"required,minLength=1"`
	Description string `yaml:"description,omitempty"`
	// Runs is how many times each case is scanned for latency sampling.
	Runs  int    `yaml:"runs,omitempty" schema:"minimum=1"`
	Cases []Case `yaml:"cases" schema:"required,minItems=1"`
}

type Case struct {
	Name   string          `yaml:"name" schema:"required,minLength=1"`
	Input  string          `yaml:"input" schema:"required"`
	Tokens []ExpectedToken `yaml:"tokens" schema:"required,minItems=1"`
	// Skipped lists the offsets expected to be reported as unrecognized.
	// A nil list is not checked.
	Skipped []int `yaml:"skipped,omitempty"`
}

// ExpectedToken is the flat YAML form of a token. Line and Column are only
// compared when non-zero.
type ExpectedToken struct {
	Kind   token.Kind `yaml:"kind" schema:"required"`
	Value  string     `yaml:"value,omitempty"`
	Offset int        `yaml:"offset" schema:"required,minimum=0"`
	Length int        `yaml:"length" schema:"required,minimum=0"`
	Line   int        `yaml:"line,omitempty" schema:"minimum=1"`
	Column int        `yaml:"column,omitempty" schema:"minimum=1"`
}

func (e ExpectedToken) Token() token.Token {
	return token.Token{
		Kind:  e.Kind,
		Value: e.Value,
		Location: token.Location{
			Offset: e.Offset,
			Length: e.Length,
			Line:   e.Line,
			Column: e.Column,
		},
	}
}

// Expected converts the case's token list for Compare.
func (c Case) Expected() []token.Token {
	out := make([]token.Token, len(c.Tokens))
	for i, e := range c.Tokens {
		out[i] = e.Token()
	}
	return out
}

func (s *Suite) runs() int {
	if s.Runs < 1 {
		return 1
	}
	return s.Runs
}
