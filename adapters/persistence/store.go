package persistence

import (
	"fmt"
	"strings"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewStore opens the key-value store selected by cfg.Store.Driver. The
// returned close function releases the underlying connection.
func NewStore(cfg config.Config, log logger.Logger) (service.KeyValueStore, func(), error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "", DriverMemory:
		log.Warn("Using in-memory store, profiles are lost on exit")
		return NewMemoryStore(), func() {}, nil

	case DriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb), func() { rdb.Close() }, nil

	case DriverPostgres:
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(pool), pool.Close, nil

	case DriverSQLite:
		db, err := OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Opened SQLite store")
		return NewSQLiteStore(db), func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
