package brand

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteBackend stores the document in the single-row brand_config table
// created by db.Open.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend returns a backend on an opened database.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

// Name implements Backend.
func (b *SQLiteBackend) Name() string {
	return "sqlite"
}

// Load implements Backend.
func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var doc string
	err := b.db.QueryRowContext(ctx, `SELECT document FROM brand_config WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query brand config: %w", err)
	}
	return []byte(doc), nil
}

// Save implements Backend.
func (b *SQLiteBackend) Save(ctx context.Context, doc []byte) error {
	_, err := b.db.ExecContext(ctx, `INSERT INTO brand_config (id, document, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(doc), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert brand config: %w", err)
	}
	return nil
}

var _ Backend = (*SQLiteBackend)(nil)
