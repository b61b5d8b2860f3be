package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var tokenColumns = []string{"scan_id", "position", "kind", "kind_name", "value", "byte_offset", "byte_length", "line", "col"}

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, errors.New("connection pool is required")
	}
	return &Storer{pool: pool, db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, scan domain.Scan) (uuid.UUID, error) {
	scan.Prepare(time.Now().UTC())

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if err := insertScan(ctx, tx, scan); err != nil {
			return err
		}
		return copyTokens(ctx, tx, tokenRows(scan))
	})
	if err != nil {
		return uuid.Nil, err
	}

	return scan.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, scans []domain.Scan) error {
	if len(scans) == 0 {
		return nil
	}
	now := time.Now().UTC()

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var rows [][]interface{}
		for i := range scans {
			scans[i].Prepare(now)
			if err := insertScan(ctx, tx, scans[i]); err != nil {
				return fmt.Errorf("scan %d: %w", i, err)
			}
			rows = append(rows, tokenRows(scans[i])...)
		}
		return copyTokens(ctx, tx, rows)
	})
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Scan, error) {
	scan := domain.Scan{}
	var diagnostics []byte

	err := s.db.QueryRow(ctx, `
		SELECT id, name, source, diagnostics, created_at
		FROM scans
		WHERE id = $1`, id,
	).Scan(&scan.ID, &scan.Name, &scan.Source, &diagnostics, &scan.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("scan %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scan: %w", err)
	}

	scan.Diagnostics = []lexer.Diagnostic{}
	if err := json.Unmarshal(diagnostics, &scan.Diagnostics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal diagnostics: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT kind, value, byte_offset, byte_length, line, col
		FROM scan_tokens
		WHERE scan_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}

	scan.Tokens, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (token.Token, error) {
		var (
			t    token.Token
			kind int16
		)
		err := row.Scan(&kind, &t.Value, &t.Location.Offset, &t.Location.Length, &t.Location.Line, &t.Location.Column)
		t.Kind = token.Kind(kind)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens: %w", err)
	}

	return &scan, nil
}

func (s *Storer) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storer) Close() {
	s.pool.Close()
}

func insertScan(ctx context.Context, tx pgx.Tx, scan domain.Scan) error {
	diagnostics, err := json.Marshal(scan.Diagnostics)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO scans (id, name, source, token_count, diagnostics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		scan.ID,
		scan.Name,
		scan.Source,
		len(scan.Tokens),
		diagnostics,
		scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}
	return nil
}

func tokenRows(scan domain.Scan) [][]interface{} {
	rows := make([][]interface{}, len(scan.Tokens))
	for i, t := range scan.Tokens {
		rows[i] = []interface{}{
			scan.ID,
			int32(i),
			int16(t.Kind),
			t.Kind.String(),
			t.Value,
			int32(t.Location.Offset),
			int32(t.Location.Length),
			int32(t.Location.Line),
			int32(t.Location.Column),
		}
	}
	return rows
}

func copyTokens(ctx context.Context, tx pgx.Tx, rows [][]interface{}) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"scan_tokens"},
		tokenColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert tokens: %w", err)
	}
	return nil
}
