package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/torqlabs/torq-wallet/internal/dbx"
	"github.com/torqlabs/torq-wallet/internal/kv/migrations"
)

// SQLiteStore persists collections and single keys in a local SQLite
// database. Sequences live in the collections table keyed by
// (collection, seq); singletons live in the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the database at dsn and applies
// the embedded schema migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// NewSQLiteStore wraps an already-migrated database handle. Tests use this
// with an in-memory connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LoadAll returns all records of a collection in insertion order.
// An absent collection yields an empty slice.
func (s *SQLiteStore) LoadAll(ctx context.Context, collection string) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM collections WHERE collection = ? ORDER BY seq`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	defer rows.Close()

	var result [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		result = append(result, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collection rows: %w", err)
	}
	return result, nil
}

// SaveAll replaces the collection's records in a single transaction,
// renumbering seq from 0 in slice order.
func (s *SQLiteStore) SaveAll(ctx context.Context, collection string, records [][]byte) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM collections WHERE collection = ?`, collection); err != nil {
			return err
		}
		for i, r := range records {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO collections (collection, seq, value) VALUES (?, ?, ?)`,
				collection, i, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

// LoadOne returns the value stored under key, or (nil, nil) if absent.
func (s *SQLiteStore) LoadOne(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata[%s]: %w", key, err)
	}
	return value, nil
}

// SaveOne upserts the value stored under key.
func (s *SQLiteStore) SaveOne(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save metadata[%s]: %w", key, err)
	}
	return nil
}

// DeleteOne removes the value stored under key. Deleting an absent key is
// not an error.
func (s *SQLiteStore) DeleteOne(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
