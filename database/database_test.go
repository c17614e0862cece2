package database

import (
	"context"
	"path/filepath"
	"testing"

	"educare/config"
	"educare/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{KVBackend: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "kv.db")}

	store, closeFn, err := OpenStore(cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "user:1", []byte(`{"id":"1"}`)))
	raw, err := store.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(raw))
}

func TestOpenStore_Memory(t *testing.T) {
	store, _, err := OpenStore(&config.Config{KVBackend: "memory"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryStore{}, store)
}

func TestOpenStore_Unknown(t *testing.T) {
	_, _, err := OpenStore(&config.Config{KVBackend: "etcd"}, zap.NewNop())
	assert.Error(t, err)
}

func TestConnect_UnsupportedType(t *testing.T) {
	_, err := Connect("mysql", "")
	assert.Error(t, err)
}
