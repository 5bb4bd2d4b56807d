// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jason-s-yu/solitario/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// publishTimeout bounds a single asynchronous push.
const publishTimeout = 2 * time.Second

// Connect opens a Redis client and pings it.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// listPusher is the part of the Redis client the publisher needs.
type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// Publisher pushes journal records onto a Redis list for the historian.
type Publisher struct {
	client listPusher
	queue  string
	log    logrus.FieldLogger
	wg     sync.WaitGroup
}

// NewPublisher builds a publisher writing to the given list.
func NewPublisher(client listPusher, queue string, logger logrus.FieldLogger) *Publisher {
	return &Publisher{client: client, queue: queue, log: logger}
}

// Publish serializes the given record to JSON, then pushes it to the Redis queue.
func (p *Publisher) Publish(ctx context.Context, record models.GameActionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal GameActionRecord: %w", err)
	}
	if err := p.client.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}

// PublishAsync publishes in the background so a slow Redis never stalls play.
// Failures are logged and dropped.
func (p *Publisher) PublishAsync(record models.GameActionRecord) {
	p.wg.Add(1)
	go func(rec models.GameActionRecord) {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.Publish(ctx, rec); err != nil {
			p.log.WithError(err).WithFields(logrus.Fields{
				"game_id":      rec.GameID,
				"action_index": rec.ActionIndex,
			}).Warn("failed to publish game action")
		}
	}(record)
}

// Wait blocks until every asynchronous publish has finished.
func (p *Publisher) Wait() {
	p.wg.Wait()
}
