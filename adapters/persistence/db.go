package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const kvTable = "kv_store"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore expects the kv_store table from migrations/ to exist.
func NewPostgresStore(db *pgxpool.Pool) service.KeyValueStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build kv get query: %w", err)
	}

	var value string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query kv %q: %w", key, err)
	}
	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psql.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert query: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}
