package database

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

type poolConfig struct {
	maxIdle     int
	maxOpen     int
	maxLifetime time.Duration // 0 keeps connections forever
}

var (
	postgresPool = poolConfig{maxIdle: 10, maxOpen: 100, maxLifetime: time.Hour}
	// SQLite allows one writer, and a ":memory:" database lives only as long as
	// its single connection, so that connection is never recycled.
	sqlitePool = poolConfig{maxIdle: 1, maxOpen: 1}
)

func configureConnectionPool(db *gorm.DB, cfg poolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(cfg.maxIdle)
	sqlDB.SetMaxOpenConns(cfg.maxOpen)
	sqlDB.SetConnMaxLifetime(cfg.maxLifetime)
	sqlDB.SetConnMaxIdleTime(0)

	return nil
}

// NewGormDBFromDSN opens a PostgreSQL connection.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, postgresPool); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB opens (or creates) a local SQLite database file. ":memory:" gives
// a private in-memory database, which tests rely on.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, sqlitePool); err != nil {
		return nil, err
	}

	return db, nil
}
