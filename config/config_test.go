package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_PREFIX", "")
	t.Setenv("KV_BACKEND", "")
	t.Setenv("TOKEN_TTL", "")

	cfg := LoadConfig()

	assert.Equal(t, "/make-server-97f4c85e", cfg.APIPrefix)
	assert.Equal(t, "sqlite", cfg.KVBackend)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.QuizSeedOnStart)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_PREFIX", "/api/")
	t.Setenv("KV_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("QUIZ_SEED_ON_START", "false")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/educare")

	cfg := LoadConfig()

	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "redis", cfg.KVBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.QuizSeedOnStart)
	assert.Equal(t, "postgres://u:p@db/educare", cfg.DBDsn)
}

func TestGetEnvInt_BadValueFallsBack(t *testing.T) {
	t.Setenv("SALT_ROUND", "ten")
	assert.Equal(t, 10, getEnvInt("SALT_ROUND", 10))
}
