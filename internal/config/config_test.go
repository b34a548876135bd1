package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_DSN", "ENV", "LOG_LEVEL", "HTTP_ADDR", "MIGRATIONS_DIR", "SEED_FILE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
		"CORS_ORIGINS", "TELEGRAM_TOKEN", "ADMIN_CHAT_IDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/tuu")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/tuu", cfg.GetDBDSN())
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":30025", cfg.HTTPAddr)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.AdminChatIDs)
}

func TestLoad_RequiresDSN(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://db/tuu")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ADMIN_CHAT_IDS", "10, 20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, []int64{10, 20}, cfg.AdminChatIDs)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad redis db":      {"REDIS_DB": "x"},
		"bad ttl":           {"CACHE_TTL": "soon"},
		"bad chat id":       {"TELEGRAM_TOKEN": "t", "ADMIN_CHAT_IDS": "abc"},
		"token without ids": {"TELEGRAM_TOKEN": "t"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_DSN", "postgres://db/tuu")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
