package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/khoahotran/professional-ladder/internal/application/service"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// OpenSQLite opens (creating if needed) the database file at path and makes
// sure the kv_store table exists.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

type sqliteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) service.KeyValueStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query kv %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}
