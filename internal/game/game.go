// internal/game/game.go
package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/jason-s-yu/solitario/internal/models"
	"github.com/jason-s-yu/solitario/internal/move"
	"github.com/jason-s-yu/solitario/internal/table"
	"github.com/sirupsen/logrus"
)

// ErrGameOver is returned for commands sent after the table was won.
var ErrGameOver = errors.New("game is already over")

// OnGameEndFunc handles a finished game, e.g. to announce or persist the result.
type OnGameEndFunc func(gameID uuid.UUID, moves int)

// Game wraps one table with an identity, logging and the journal hooks.
type Game struct {
	ID        uuid.UUID
	Kind      cards.Kind
	StartedAt time.Time
	GameOver  bool
	Mu        sync.Mutex

	// OnAction receives a record of every applied move. If nil, nothing is recorded.
	OnAction func(rec models.GameActionRecord)

	// OnGameEnd is invoked once, when the table is won.
	OnGameEnd OnGameEndFunc

	table       *table.Table
	actionIndex int
	log         logrus.FieldLogger
}

// New deals a fresh table of the given deck kind.
func New(rng *rand.Rand, kind cards.Kind, logger logrus.FieldLogger) *Game {
	return NewWithTable(table.New(rng, kind), kind, logger)
}

// NewWithTable wraps an already dealt table.
func NewWithTable(t *table.Table, kind cards.Kind, logger logrus.FieldLogger) *Game {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	id := uuid.New()
	return &Game{
		ID:        id,
		Kind:      kind,
		StartedAt: time.Now(),
		table:     t,
		log:       logger.WithField("game_id", id),
	}
}

// Start records the opening deal. Call it after the hooks are wired.
func (g *Game) Start() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	snap := g.table.Snapshot()
	piles := make([]interface{}, len(snap.Piles))
	for i, p := range snap.Piles {
		piles[i] = map[string]interface{}{"cards": models.NewCards(p.Cards), "revealed": p.Revealed}
	}
	g.logAction(models.ActionGameStart, map[string]interface{}{
		"deck":  string(g.Kind),
		"stock": models.NewCards(snap.Stock),
		"piles": piles,
	})
	g.log.WithField("deck", g.Kind).Info("game started")
}

// Apply parses one command line and applies it to the table. The table is
// left unchanged on any error.
func (g *Game) Apply(input string) (table.Outcome, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.GameOver {
		return table.OutcomeQuit, ErrGameOver
	}

	m, err := move.Parse(input)
	if err != nil {
		g.log.WithError(err).WithField("input", input).Debug("rejected command")
		return table.OutcomeContinue, err
	}

	out, err := g.table.ApplyMove(m)
	if err != nil {
		g.log.WithError(err).WithField("move", m).Debug("rejected move")
		return out, err
	}
	if out == table.OutcomeQuit {
		g.logAction(models.ActionGameQuit, nil)
		g.log.WithField("moves", g.table.Moves()).Info("player quit")
		return out, nil
	}

	g.logAction(m.Type(), move.Payload(m))
	g.log.WithFields(logrus.Fields{"move": m, "moves": g.table.Moves()}).Debug("applied move")

	if g.table.Won() {
		g.endGame()
	}
	return out, nil
}

// endGame marks the game over and fires the end hook. Lock must be held.
func (g *Game) endGame() {
	g.GameOver = true
	moves := g.table.Moves()
	g.logAction(models.ActionGameEnd, map[string]interface{}{
		"duration_ms": time.Since(g.StartedAt).Milliseconds(),
	})
	g.log.WithField("moves", moves).Info("game won")
	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, moves)
	}
}

// Won reports whether the table is won.
func (g *Game) Won() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.table.Won()
}

// Moves is the table's move counter.
func (g *Game) Moves() int {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.table.Moves()
}

// Snapshot returns a deep copy of the table.
func (g *Game) Snapshot() table.State {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.table.Snapshot()
}

// logAction hands a journal record to OnAction. Lock must be held.
func (g *Game) logAction(actionType string, payload map[string]interface{}) {
	g.actionIndex++
	if g.OnAction == nil {
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	g.OnAction(models.GameActionRecord{
		GameID:        g.ID,
		ActionIndex:   g.actionIndex,
		ActionType:    actionType,
		ActionPayload: payload,
		Moves:         g.table.Moves(),
		Won:           g.table.Won(),
		Timestamp:     time.Now().UnixMilli(),
	})
}
