// internal/historian/historian.go pops journal records from a Redis queue and
// persists them in batches.
package historian

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	popTimeout    = 3 * time.Second
	errorBackoff  = time.Second
	sweepInterval = time.Minute
)

// Popper is the part of the Redis client the historian reads with.
type Popper interface {
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// SinkFunc persists one batch. The batch is kept and retried if it fails.
type SinkFunc func(ctx context.Context, recs []models.GameActionRecord) error

// AbandonFunc marks an idle game as abandoned, reporting whether it changed.
type AbandonFunc func(ctx context.Context, gameID uuid.UUID) (bool, error)

// Options tune batching and the inactivity sweep. Zero values take defaults.
type Options struct {
	Queue      string
	BatchSize  int
	FlushDelay time.Duration
	Inactivity time.Duration
}

// Service drains the queue into the sink.
type Service struct {
	client  Popper
	sink    SinkFunc
	abandon AbandonFunc
	opts    Options
	log     logrus.FieldLogger
	now     func() time.Time

	batchMu sync.Mutex
	batch   []models.GameActionRecord

	activityMu   sync.Mutex
	lastActivity map[uuid.UUID]time.Time
}

// New builds a historian. abandon may be nil to disable the sweep.
func New(client Popper, sink SinkFunc, abandon AbandonFunc, opts Options, logger logrus.FieldLogger) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 20
	}
	if opts.FlushDelay <= 0 {
		opts.FlushDelay = 500 * time.Millisecond
	}
	if opts.Inactivity <= 0 {
		opts.Inactivity = 10 * time.Minute
	}
	return &Service{
		client:       client,
		sink:         sink,
		abandon:      abandon,
		opts:         opts,
		log:          logger,
		now:          time.Now,
		batch:        make([]models.GameActionRecord, 0, opts.BatchSize),
		lastActivity: make(map[uuid.UUID]time.Time),
	}
}

// Run blocks until ctx is cancelled, then flushes whatever is still batched.
func (s *Service) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.tickLoop(ctx)
	}()

	s.log.WithField("queue", s.opts.Queue).Info("historian started")
	s.readLoop(ctx)
	wg.Wait()

	s.Flush(context.Background())
	s.log.Info("historian stopped")
}

func (s *Service) readLoop(ctx context.Context) {
	for ctx.Err() == nil {
		res, err := s.client.BLPop(ctx, popTimeout, s.opts.Queue).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			s.log.WithError(err).Error("BLPop failed")
			select {
			case <-ctx.Done():
			case <-time.After(errorBackoff):
			}
			continue
		}
		// res[0] is the queue name and res[1] the payload.
		if len(res) < 2 {
			continue
		}
		s.handle(ctx, res[1])
	}
}

func (s *Service) tickLoop(ctx context.Context) {
	flush := time.NewTicker(s.opts.FlushDelay)
	defer flush.Stop()

	every := sweepInterval
	if s.opts.Inactivity < every {
		every = s.opts.Inactivity
	}
	sweep := time.NewTicker(every)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-flush.C:
			s.Flush(ctx)
		case <-sweep.C:
			s.Sweep(ctx)
		}
	}
}

// handle decodes one payload and adds it to the batch.
func (s *Service) handle(ctx context.Context, payload string) {
	var rec models.GameActionRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		s.log.WithError(err).Warn("invalid action record")
		return
	}
	s.touch(rec)

	s.batchMu.Lock()
	s.batch = append(s.batch, rec)
	full := len(s.batch) >= s.opts.BatchSize
	s.batchMu.Unlock()

	if full {
		s.Flush(ctx)
	}
}

func (s *Service) touch(rec models.GameActionRecord) {
	s.activityMu.Lock()
	defer s.activityMu.Unlock()
	switch rec.ActionType {
	case models.ActionGameEnd, models.ActionGameQuit:
		delete(s.lastActivity, rec.GameID)
	default:
		s.lastActivity[rec.GameID] = s.now()
	}
}

// Flush hands the current batch to the sink in one call.
func (s *Service) Flush(ctx context.Context) {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	if len(s.batch) == 0 {
		return
	}
	pending := make([]models.GameActionRecord, len(s.batch))
	copy(pending, s.batch)

	if err := s.sink(ctx, pending); err != nil {
		s.log.WithError(err).WithField("pending", len(pending)).Error("flush failed")
		return
	}
	s.batch = s.batch[:0]
	s.log.WithField("count", len(pending)).Debug("flushed actions")
}

// Pending reports how many records wait for the next flush.
func (s *Service) Pending() int {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()
	return len(s.batch)
}

// Sweep marks games that have been idle longer than the inactivity
// threshold as abandoned.
func (s *Service) Sweep(ctx context.Context) {
	if s.abandon == nil {
		return
	}
	now := s.now()
	var idle []uuid.UUID
	s.activityMu.Lock()
	for id, last := range s.lastActivity {
		if now.Sub(last) > s.opts.Inactivity {
			idle = append(idle, id)
			delete(s.lastActivity, id)
		}
	}
	s.activityMu.Unlock()

	for _, id := range idle {
		changed, err := s.abandon(ctx, id)
		if err != nil {
			s.log.WithError(err).WithField("game_id", id).Error("failed to mark game abandoned")
			continue
		}
		if changed {
			s.log.WithField("game_id", id).Info("marked game abandoned due to inactivity")
		}
	}
}
