// cmd/historian/main.go drains the move journal from Redis into PostgreSQL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/cache"
	"github.com/jason-s-yu/solitario/internal/config"
	"github.com/jason-s-yu/solitario/internal/database"
	"github.com/jason-s-yu/solitario/internal/historian"
	"github.com/jason-s-yu/solitario/internal/models"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.PostgresDSN())
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer pool.Close()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.WithError(err).Fatal("failed to prepare schema")
	}

	rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to redis")
	}
	defer rdb.Close()

	sink := func(ctx context.Context, recs []models.GameActionRecord) error {
		return database.RecordActions(ctx, pool, recs)
	}
	abandon := func(ctx context.Context, id uuid.UUID) (bool, error) {
		return database.MarkAbandoned(ctx, pool, id)
	}

	svc := historian.New(rdb, sink, abandon, historian.Options{
		Queue:      cfg.QueueName,
		BatchSize:  cfg.BatchSize,
		FlushDelay: cfg.FlushDelay,
		Inactivity: cfg.Inactivity,
	}, logger)
	svc.Run(ctx)
}
