// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/sirupsen/logrus"
)

// DefaultQueueName is the Redis list that carries journal records.
const DefaultQueueName = "solitario_actions"

// Config holds everything the binaries read from the environment.
// Binaries import github.com/joho/godotenv/autoload so a .env file is honoured.
type Config struct {
	Deck     cards.Kind
	Seed     int64 // 0 means seed from the clock
	LogLevel logrus.Level

	JournalEnabled bool
	RedisAddr      string
	RedisDB        int
	QueueName      string

	BatchSize  int
	FlushDelay time.Duration
	Inactivity time.Duration // idle games older than this are marked abandoned

	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string
	PostgresDatabase string
}

// Load reads the configuration from environment variables, applying defaults.
func Load() (Config, error) {
	deck, err := cards.ParseKind(getEnv("SOLITARIO_DECK", string(cards.Long)))
	if err != nil {
		return Config{}, fmt.Errorf("SOLITARIO_DECK: %w", err)
	}
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		Deck:     deck,
		Seed:     int64(getEnvInt("SOLITARIO_SEED", 0)),
		LogLevel: level,

		JournalEnabled: getEnvBool("JOURNAL_ENABLED", false),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		QueueName:      getEnv("HISTORIAN_QUEUE_NAME", DefaultQueueName),

		BatchSize:  getEnvInt("HISTORIAN_BATCH_SIZE", 20),
		FlushDelay: time.Duration(getEnvInt("HISTORIAN_FLUSH_MS", 500)) * time.Millisecond,
		Inactivity: time.Duration(getEnvInt("GAME_INACTIVITY_TIMEOUT_SEC", 600)) * time.Second,

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresHost:     getEnv("PG_HOST", "localhost"),
		PostgresPort:     getEnv("PG_PORT", "5432"),
		PostgresDatabase: os.Getenv("PG_DATABASE"),
	}, nil
}

// PostgresDSN builds the connection string for pgx.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDatabase,
	)
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
