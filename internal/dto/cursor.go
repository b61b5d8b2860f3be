package dto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Cursor is a position in the token list of one archived scan. It points at
// the last token already returned.
type Cursor struct {
	Position int       `json:"p"`
	ScanID   uuid.UUID `json:"i"`
}

// EncodeCursor converts a Cursor to a base64-encoded string
func EncodeCursor(position int, scanID uuid.UUID) (string, error) {
	if scanID == uuid.Nil {
		return "", fmt.Errorf("cursor scan ID cannot be nil")
	}
	if position < 0 {
		return "", fmt.Errorf("cursor position cannot be negative")
	}

	b, err := json.Marshal(Cursor{Position: position, ScanID: scanID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}

// DecodeCursor parses a base64-encoded cursor string. An empty string means
// "from the start" and yields a nil cursor.
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cursor: %w", err)
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}

	if c.ScanID == uuid.Nil {
		return nil, fmt.Errorf("invalid cursor: scan ID cannot be nil")
	}
	if c.Position < 0 {
		return nil, fmt.Errorf("invalid cursor: negative position")
	}

	return &c, nil
}
