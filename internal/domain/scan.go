package domain

import (
	"bytes"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
)

const ScanDefaultName = "<input>"

// Scan is one tokenized source unit as kept in the scan archive.
type Scan struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Source      []byte             `json:"source"`
	Tokens      []token.Token      `json:"tokens"`
	Diagnostics []lexer.Diagnostic `json:"diagnostics"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewScan tokenizes a copy of source and wraps the result. The ID is left
// unset so the store can assign one.
func NewScan(name string, source []byte) Scan {
	if name == "" {
		name = ScanDefaultName
	}
	res := lexer.Tokenize(source)
	return Scan{
		Name:        name,
		Source:      bytes.Clone(source),
		Tokens:      res.Tokens.Slice(),
		Diagnostics: res.Diagnostics,
		CreatedAt:   time.Now().UTC(),
	}
}

// KindCounts tallies tokens per kind, EOF included.
func (s Scan) KindCounts() map[token.Kind]int {
	counts := make(map[token.Kind]int)
	for _, t := range s.Tokens {
		counts[t.Kind]++
	}
	return counts
}

// Prepare fills the fields a store needs before writing s.
func (s *Scan) Prepare(now time.Time) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Name == "" {
		s.Name = ScanDefaultName
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.Diagnostics == nil {
		s.Diagnostics = []lexer.Diagnostic{}
	}
}
