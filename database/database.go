package database

import (
	"context"
	"fmt"
	"time"

	"educare/config"
	"educare/kv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm connection for dbType ("postgres" or "sqlite") and
// runs migrations.
func Connect(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbType {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dbType, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if dbType == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&kv.KVEntry{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// OpenStore builds the key-value store selected by cfg.KVBackend. The returned
// close function releases the underlying connection.
func OpenStore(cfg *config.Config, log *zap.Logger) (kv.Store, func() error, error) {
	switch cfg.KVBackend {
	case "memory":
		log.Warn("using in-memory key-value store, data is lost on restart")
		return kv.NewMemoryStore(), func() error { return nil }, nil

	case "sqlite", "postgres":
		dsn := cfg.DBDsn
		if cfg.KVBackend == "sqlite" {
			dsn = cfg.SQLitePath
		}
		db, err := Connect(cfg.KVBackend, dsn)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected key-value store", zap.String("backend", cfg.KVBackend))
		sqlDB, _ := db.DB()
		return kv.NewGormStore(db), sqlDB.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("connected key-value store", zap.String("backend", "redis"), zap.String("addr", cfg.RedisAddr))
		return kv.NewRedisStore(client), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown KV_BACKEND %q", cfg.KVBackend)
}
