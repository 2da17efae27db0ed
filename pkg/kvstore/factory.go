package kvstore

import (
	"context"
	"fmt"

	"ai-notecapture-be/pkg/database"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver    string
	DSN       string
	KeyPrefix string
}

// New builds the Store selected by cfg.Driver. For redis, DSN is a redis:// URL
// (a bare host:port is accepted too).
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil

	case DriverRedis:
		opt, err := redis.ParseURL(cfg.DSN)
		if err != nil {
			opt = &redis.Options{Addr: cfg.DSN}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewRedisStore(rdb, cfg.KeyPrefix), nil

	case DriverPostgres:
		db, err := database.NewGormDBFromDSN(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewGormStore(db, cfg.KeyPrefix)

	case DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return NewGormStore(db, cfg.KeyPrefix)

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}
