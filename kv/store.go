// Package kv is the key-value document store behind every handler: get, set,
// delete and list-by-prefix over JSON values, plus an atomic single-key update.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Entry is a key with its raw JSON value.
type Entry struct {
	Key   string
	Value []byte
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to write. Returning an error aborts the update.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is implemented by MemoryStore, GormStore and RedisStore.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	// GetByPrefix returns all entries whose key starts with prefix, ordered by key.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	// Update applies fn to a single key atomically with respect to other
	// Update calls on the same key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// GetJSON reads key and decodes it into a T.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("kv: decode %s: %w", key, err)
	}
	return v, nil
}

// SetJSON encodes v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON atomically decodes the value at key, applies mutate and writes
// the result back. A missing key yields ErrNotFound without writing.
func UpdateJSON[T any](ctx context.Context, s Store, key string, mutate func(*T) error) (T, error) {
	var out T
	err := s.Update(ctx, key, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrNotFound
		}
		var v T
		if err := json.Unmarshal(current, &v); err != nil {
			return nil, fmt.Errorf("kv: decode %s: %w", key, err)
		}
		if err := mutate(&v); err != nil {
			return nil, err
		}
		out = v
		return json.Marshal(v)
	})
	return out, err
}

// ValuesJSON decodes every entry under prefix into a T, skipping entries that
// do not decode.
func ValuesJSON[T any](ctx context.Context, s Store, prefix string) ([]T, error) {
	entries, err := s.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err := json.Unmarshal(e.Value, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
