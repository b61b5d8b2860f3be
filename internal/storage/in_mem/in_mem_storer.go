package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Scan
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Scan),
	}
}

func (s *InMemStorer) Save(ctx context.Context, scan domain.Scan) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	scan.Prepare(time.Now().UTC())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[scan.ID] = clone(scan)

	slog.Debug("Saved scan to in-memory storage", "id", scan.ID, "name", scan.Name, "tokens", len(scan.Tokens))
	return scan.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, scans []domain.Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now().UTC()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for i := range scans {
		scans[i].Prepare(now)
		s.storage[scans[i].ID] = clone(scans[i])
	}
	slog.Debug("Saved scans to in-memory storage", "count", len(scans))
	return nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Scan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	scan, ok := s.storage[id]
	if !ok {
		return nil, fmt.Errorf("scan %s: %w", id, storage.ErrNotFound)
	}
	out := clone(scan)
	return &out, nil
}

func (s *InMemStorer) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage)
}

func (s *InMemStorer) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *InMemStorer) Close() {}

// clone detaches stored scans from caller-owned slices.
func clone(scan domain.Scan) domain.Scan {
	scan.Source = slices.Clone(scan.Source)
	scan.Tokens = slices.Clone(scan.Tokens)
	scan.Diagnostics = slices.Clone(scan.Diagnostics)
	return scan
}
