package pg

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	pkgtesting "github.com/DjordjeVuckovic/proteus/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

func TestMain(m *testing.M) {
	flag.Parse()
	testCtx = context.Background()

	if testing.Short() {
		os.Exit(m.Run())
	}

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "protc_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres container unavailable, skipping integration tests: %v\n", err)
		os.Exit(m.Run())
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func newTestStorer(t *testing.T) *Storer {
	t.Helper()
	if testPool == nil {
		t.Skip("postgres not available")
	}

	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE scans CASCADE")
	require.NoError(t, err)

	s, err := NewStorer(testPool)
	require.NoError(t, err)
	return s
}

func TestNewStorer_NilPool(t *testing.T) {
	_, err := NewStorer(nil)
	assert.Error(t, err)
}

func TestTokenRows(t *testing.T) {
	scan := domain.NewScan("a.pr", []byte("fn x"))
	scan.ID = uuid.New()

	rows := tokenRows(scan)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], len(tokenColumns))
	assert.Equal(t, scan.ID, rows[0][0])
	assert.Equal(t, int16(token.KEYWORD), rows[0][2])
	assert.Equal(t, "KEYWORD", rows[0][3])
	assert.Equal(t, "fn", rows[0][4])
	assert.Equal(t, int32(3), rows[1][5])
	assert.Equal(t, int32(4), rows[2][5])
}

func TestStorer_SaveAndGet(t *testing.T) {
	s := newTestStorer(t)

	scan := domain.NewScan("main.pr", []byte("fn main() -> i32 {\n  return 1.5 # x\n}"))
	id, err := s.Save(testCtx, scan)
	require.NoError(t, err)

	got, err := s.Get(testCtx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "main.pr", got.Name)
	assert.Equal(t, scan.Source, got.Source)
	assert.Equal(t, scan.Tokens, got.Tokens)
	assert.Equal(t, scan.Diagnostics, got.Diagnostics)
}

func TestStorer_SaveNonUTF8Source(t *testing.T) {
	s := newTestStorer(t)

	scan := domain.NewScan("bin.pr", []byte("a\xffb\x00c"))
	id, err := s.Save(testCtx, scan)
	require.NoError(t, err)

	got, err := s.Get(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("a\xffb\x00c"), got.Source)
	assert.Equal(t, scan.Tokens, got.Tokens)
	assert.Equal(t, scan.Diagnostics, got.Diagnostics)
}

func TestStorer_GetMissing(t *testing.T) {
	s := newTestStorer(t)

	_, err := s.Get(testCtx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorer_SaveBulk(t *testing.T) {
	s := newTestStorer(t)

	scans := []domain.Scan{
		domain.NewScan("a.pr", []byte("a = 1")),
		domain.NewScan("b.pr", []byte("b == 2")),
	}
	preset := uuid.New()
	scans[0].ID = preset
	require.NoError(t, s.SaveBulk(testCtx, scans))
	assert.Equal(t, preset, scans[0].ID)
	require.NotEqual(t, uuid.Nil, scans[1].ID)

	got, err := s.Get(testCtx, scans[0].ID)
	require.NoError(t, err)
	assert.Len(t, got.Tokens, 4)

	got, err = s.Get(testCtx, scans[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "b.pr", got.Name)

	var count int
	require.NoError(t, testPool.GetConn().QueryRow(testCtx, "SELECT count(*) FROM scans").Scan(&count))
	assert.Equal(t, 2, count)
}
