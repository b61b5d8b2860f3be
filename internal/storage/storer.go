package storage

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/proteus/internal/apperr"
	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/google/uuid"
)

// Store archives tokenized scans.
type Store interface {
	Save(ctx context.Context, scan domain.Scan) (uuid.UUID, error)
	// SaveBulk prepares the elements of scans in place, so their IDs are
	// readable by the caller afterwards.
	SaveBulk(ctx context.Context, scans []domain.Scan) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Scan, error)
	Ping(ctx context.Context) error
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

// Types lists every supported storage type.
func Types() []Type {
	return []Type{ES, PG, InMem}
}

var ErrNotFound = fmt.Errorf("scan %w", apperr.ErrNotFound)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
