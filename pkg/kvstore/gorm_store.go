package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ai-notecapture-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps every key as a row of kv_entries. It works on PostgreSQL and SQLite.
type GormStore struct {
	db     *gorm.DB
	prefix string

	// serialises updates from this process; postgres additionally row-locks
	mu       sync.Mutex
	lockRows bool
}

func NewGormStore(db *gorm.DB, prefix string) (*GormStore, error) {
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &GormStore{
		db:       db,
		prefix:   prefix,
		lockRows: db.Dialector.Name() == "postgres",
	}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(s.db.WithContext(ctx), key)
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(s.db.WithContext(ctx), key, value)
}

func (s *GormStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if s.lockRows {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		current, err := s.get(q, key)
		if err != nil && !errors.Is(err, ErrKeyNotFound) {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		return s.put(tx, key, next)
	})
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) get(db *gorm.DB, key string) ([]byte, error) {
	var entry model.KVEntry
	if err := db.Where("entry_key = ?", s.prefix+key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *GormStore) put(db *gorm.DB, key string, value []byte) error {
	entry := model.KVEntry{
		Key:   s.prefix + key,
		Value: datatypes.JSON(value),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
