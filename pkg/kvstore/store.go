package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// ErrConflict is returned when an optimistic update could not be applied
// after the backend's bounded number of attempts.
var ErrConflict = errors.New("concurrent update conflict")

// UpdateFunc receives the current value (nil when absent) and returns the
// replacement. It may be invoked more than once by optimistic backends, so it
// must derive its result from current only.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a keyed persistence capability with whole-value replacement.
// Values are JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Update performs a serialised read-modify-write of a single key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

// LoadList reads a JSON array stored under key. A missing key is an empty list.
func LoadList[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	return decodeList[T](key, raw)
}

// SaveList replaces the whole list stored under key.
func SaveList[T any](ctx context.Context, s Store, key string, items []T) error {
	raw, err := encodeList(key, items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// UpdateList applies fn to the decoded list under key inside a single Store.Update.
func UpdateList[T any](ctx context.Context, s Store, key string, fn func(items []T) ([]T, error)) error {
	return s.Update(ctx, key, func(current []byte) ([]byte, error) {
		items, err := decodeList[T](key, current)
		if err != nil {
			return nil, err
		}
		next, err := fn(items)
		if err != nil {
			return nil, err
		}
		return encodeList(key, next)
	})
}

func decodeList[T any](key string, raw []byte) ([]T, error) {
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list %q: %w", key, err)
	}
	return items, nil
}

func encodeList[T any](key string, items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode list %q: %w", key, err)
	}
	return raw, nil
}
