package dto

import (
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
)

type TokenizeRequest struct {
	// Name labels the source in diagnostics, e.g. a file name.
	Name string `json:"name,omitempty"`
	// Source is required but may be empty, which scans to a lone EOF token.
	Source  *string `json:"source"`
	Persist bool    `json:"persist,omitempty"`
}

type TokenizeResponse struct {
	ID          *uuid.UUID         `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Name        string             `json:"name"`
	Tokens      []token.Token      `json:"tokens"`
	Diagnostics []lexer.Diagnostic `json:"diagnostics"`
	KindCounts  map[string]int     `json:"kindCounts"`
}

type ScanResponse struct {
	ID          uuid.UUID          `json:"id" swaggertype:"string" format:"uuid"`
	Name        string             `json:"name"`
	Source      string             `json:"source"`
	// RawSource is set when the source is not valid UTF-8 and carries the
	// exact bytes the token offsets refer to.
	RawSource   []byte             `json:"rawSource,omitempty" swaggertype:"string" format:"base64"`
	Tokens      []token.Token      `json:"tokens"`
	Diagnostics []lexer.Diagnostic `json:"diagnostics"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type KindInfo struct {
	Ordinal  int    `json:"ordinal"`
	Name     string `json:"name"`
	HasValue bool   `json:"hasValue"`
}

// IndexedToken is a token with its index in the scan.
type IndexedToken struct {
	Position int `json:"position"`
	token.Token
}
