package config

import (
	"testing"
	"time"

	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"SOLITARIO_DECK", "SOLITARIO_SEED", "LOG_LEVEL", "JOURNAL_ENABLED",
	"REDIS_ADDR", "REDIS_DB", "HISTORIAN_QUEUE_NAME", "HISTORIAN_BATCH_SIZE", "HISTORIAN_FLUSH_MS", "GAME_INACTIVITY_TIMEOUT_SEC",
	"POSTGRES_USER", "POSTGRES_PASSWORD", "PG_HOST", "PG_PORT", "PG_DATABASE",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cards.Long, cfg.Deck)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JournalEnabled)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, DefaultQueueName, cfg.QueueName)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.FlushDelay)
	assert.Equal(t, 10*time.Minute, cfg.Inactivity)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLITARIO_DECK", "short")
	t.Setenv("SOLITARIO_SEED", "99")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JOURNAL_ENABLED", "true")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("POSTGRES_USER", "sol")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_DATABASE", "games")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cards.Short, cfg.Deck)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.JournalEnabled)
	assert.Equal(t, 0, cfg.RedisDB, "unparsable values fall back to the default")
	assert.Equal(t, "postgres://sol:pw@db:5432/games", cfg.PostgresDSN())
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLITARIO_DECK", "tarot")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}
