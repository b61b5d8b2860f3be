package conformance

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/proteus/internal/token"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a suite. Unknown kind names are rejected by
// the decoder.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("suite has no name")
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %q has no cases", s.Name)
	}
	if s.Runs < 0 {
		return nil, fmt.Errorf("suite %q: runs must not be negative", s.Name)
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case at index %d has no name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		if len(c.Tokens) == 0 || c.Tokens[len(c.Tokens)-1].Kind != token.EOF {
			return nil, fmt.Errorf("case %q: last expected token must be EOF", c.Name)
		}
	}

	return &s, nil
}
