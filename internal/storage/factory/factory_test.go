package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/storage/es"
	"github.com/DjordjeVuckovic/proteus/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "mongo")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg with pool size", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/db")
		t.Setenv("PG_MAX_CONNS", "8")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, int32(8), cfg.Pg.MaxConns)
	})

	t.Run("es defaults index name", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://a:9200, ,http://b:9200")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, es.DefaultIndexName, cfg.Es.IndexName)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
	})

	t.Run("es requires addresses", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	s, err := NewStore(ctx, &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.InMemStorer{}, s)

	_, err = NewStore(ctx, &StorageConfig{Type: storage.PG})
	assert.Error(t, err)

	_, err = NewStore(ctx, &StorageConfig{Type: "mongo"})
	assert.ErrorContains(t, err, "unsupported storer type: mongo")
}
