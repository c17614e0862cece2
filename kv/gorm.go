package kv

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one row of the kv_store table: a text key and a JSON value.
type KVEntry struct {
	Key   string         `gorm:"column:key;primaryKey;size:512"`
	Value datatypes.JSON `gorm:"column:value;not null"`
}

func (KVEntry) TableName() string { return "kv_store" }

// GormStore is a Store on a SQL table through gorm (postgres or sqlite).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var keyColumn = clause.Column{Name: "key"}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e KVEntry
	err := s.db.WithContext(ctx).Where(clause.Eq{Column: keyColumn, Value: key}).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(s.db.WithContext(ctx), key, value)
}

func (s *GormStore) Del(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where(clause.Eq{Column: keyColumn, Value: key}).Delete(&KVEntry{}).Error
}

func (s *GormStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []KVEntry
	err := s.db.WithContext(ctx).
		Where(clause.Like{Column: keyColumn, Value: prefix + "%"}).
		Order(clause.OrderByColumn{Column: keyColumn}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		// LIKE treats _ and % in the prefix as wildcards
		if !strings.HasPrefix(r.Key, prefix) {
			continue
		}
		out = append(out, Entry{Key: r.Key, Value: r.Value})
	}
	return out, nil
}

// Update runs fn inside a transaction holding a row lock on key (postgres).
// SQLite serialises writers on its own.
func (s *GormStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e KVEntry
		var current []byte
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(clause.Eq{Column: keyColumn, Value: key}).
			First(&e).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			current = e.Value
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return upsert(tx, key, next)
	})
}

func upsert(db *gorm.DB, key string, value []byte) error {
	e := KVEntry{Key: key, Value: datatypes.JSON(value)}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{keyColumn},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
}
