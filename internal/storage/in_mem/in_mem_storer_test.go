package in_mem

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	scan := domain.NewScan("main.pr", []byte("fn main() { return 0 }"))
	id, err := s.Save(ctx, scan)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "main.pr", got.Name)
	assert.Equal(t, scan.Tokens, got.Tokens)

	got.Tokens[0].Kind = token.COMMA
	got.Source[0] = 'x'
	again, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, token.KEYWORD, again.Tokens[0].Kind)
	assert.Equal(t, []byte("fn main() { return 0 }"), again.Source)
}

func TestInMemStorer_GetMissing(t *testing.T) {
	_, err := NewInMemStorer().Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInMemStorer_SaveBulk(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	scans := []domain.Scan{
		domain.NewScan("a", []byte("a")),
		domain.NewScan("b", []byte("b")),
		domain.NewScan("c", []byte("c")),
	}
	require.NoError(t, s.SaveBulk(ctx, scans))
	assert.Equal(t, 3, s.Len())

	for _, scan := range scans {
		require.NotEqual(t, uuid.Nil, scan.ID)
		got, err := s.Get(ctx, scan.ID)
		require.NoError(t, err)
		assert.Equal(t, scan.Name, got.Name)
	}
}

func TestInMemStorer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewInMemStorer()
	_, err := s.Save(ctx, domain.NewScan("a", nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Error(t, s.Ping(ctx))
}

var _ storage.Store = (*InMemStorer)(nil)
