// internal/game/game_test.go
package game

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/jason-s-yu/solitario/internal/models"
	"github.com/jason-s-yu/solitario/internal/move"
	"github.com/jason-s-yu/solitario/internal/table"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockJournal collects records instead of pushing them to Redis.
type mockJournal struct {
	mu      sync.Mutex
	records []models.GameActionRecord
}

func (mj *mockJournal) onAction(rec models.GameActionRecord) {
	mj.mu.Lock()
	defer mj.mu.Unlock()
	mj.records = append(mj.records, rec)
}

func (mj *mockJournal) last() *models.GameActionRecord {
	mj.mu.Lock()
	defer mj.mu.Unlock()
	if len(mj.records) == 0 {
		return nil
	}
	return &mj.records[len(mj.records)-1]
}

func c(s cards.Suit, v int) cards.Card { return cards.MustNew(s, v) }

// setupTestGame wraps the given table with a journal and a captured logger.
func setupTestGame(t *testing.T, s table.State) (*Game, *mockJournal, *test.Hook) {
	t.Helper()
	tb, err := table.FromState(s)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := NewWithTable(tb, cards.Long, logger)
	mj := &mockJournal{}
	g.OnAction = mj.onAction
	return g, mj, hook
}

// almostWon has one hidden card left: moving the 5 off it wins.
func almostWon() table.State {
	return table.State{Piles: [table.Piles]table.PileState{
		{Cards: []cards.Card{c(cards.Clubs, 9), c(cards.Coins, 5)}, Revealed: 1},
		{Cards: []cards.Card{c(cards.Cups, 6)}, Revealed: 1},
	}}
}

func TestStartRecordsDeal(t *testing.T) {
	g := New(rand.New(rand.NewSource(11)), cards.Long, nil)
	mj := &mockJournal{}
	g.OnAction = mj.onAction
	g.Start()

	rec := mj.last()
	require.NotNil(t, rec)
	assert.Equal(t, models.ActionGameStart, rec.ActionType)
	assert.Equal(t, g.ID, rec.GameID)
	assert.Equal(t, 1, rec.ActionIndex)
	assert.Equal(t, "long", rec.ActionPayload["deck"])
	assert.Len(t, rec.ActionPayload["stock"], 24)
	assert.Len(t, rec.ActionPayload["piles"], table.Piles)
}

func TestApplyRecordsMove(t *testing.T) {
	s := almostWon()
	s.Stock = []cards.Card{c(cards.Coins, 3), c(cards.Cups, 4)}
	g, mj, _ := setupTestGame(t, s)

	out, err := g.Apply("n")
	require.NoError(t, err)
	assert.Equal(t, table.OutcomeContinue, out)

	rec := mj.last()
	require.NotNil(t, rec)
	assert.Equal(t, "draw", rec.ActionType)
	assert.Equal(t, 1, rec.Moves)
	assert.False(t, rec.Won)
	assert.False(t, g.GameOver)
	assert.NotZero(t, rec.Timestamp)
	assert.Equal(t, 1, g.Moves())
}

func TestApplyRejectedMoveIsNotRecorded(t *testing.T) {
	g, mj, hook := setupTestGame(t, table.State{})
	before := g.Snapshot()

	_, err := g.Apply("s;0")
	assert.ErrorIs(t, err, table.ErrStockEmpty)
	_, err = g.Apply("undoo")
	assert.ErrorIs(t, err, move.ErrLeftoverInput)
	_, err = g.Apply("u")
	assert.ErrorIs(t, err, table.ErrUndoUnsupported)

	assert.Nil(t, mj.last())
	assert.Equal(t, before, g.Snapshot())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestApplyQuit(t *testing.T) {
	g, mj, _ := setupTestGame(t, table.State{})
	out, err := g.Apply("quit")
	require.NoError(t, err)
	assert.Equal(t, table.OutcomeQuit, out)
	require.NotNil(t, mj.last())
	assert.Equal(t, models.ActionGameQuit, mj.last().ActionType)
	assert.False(t, g.GameOver)
}

func TestWinningMoveEndsGame(t *testing.T) {
	g, mj, hook := setupTestGame(t, almostWon())

	var endedID uuid.UUID
	endedMoves := -1
	g.OnGameEnd = func(id uuid.UUID, moves int) {
		endedID, endedMoves = id, moves
	}

	require.False(t, g.Won())
	_, err := g.Apply("m0;1;1")
	require.NoError(t, err)

	assert.True(t, g.Won())
	assert.True(t, g.GameOver)
	assert.Equal(t, g.ID, endedID)
	assert.Equal(t, 1, endedMoves)

	require.Len(t, mj.records, 2)
	assert.Equal(t, "pile_to_pile", mj.records[0].ActionType)
	assert.Equal(t, models.ActionGameEnd, mj.records[1].ActionType)
	assert.True(t, mj.records[1].Won)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	out, err := g.Apply("n")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, table.OutcomeQuit, out)
}

func TestObfuscatedStateHidesFaceDownCards(t *testing.T) {
	g, _, _ := setupTestGame(t, table.State{
		Piles: [table.Piles]table.PileState{
			{Cards: []cards.Card{c(cards.Clubs, 9), c(cards.Coins, 5)}, Revealed: 1},
		},
		Foundations: [table.Foundations][]cards.Card{nil, {c(cards.Cups, 1)}},
		Stock:       []cards.Card{c(cards.Swords, 13)},
		Waste:       []cards.Card{c(cards.Swords, 2), c(cards.Swords, 3)},
	})

	obf := g.GetCurrentObfuscatedState()
	assert.Equal(t, g.ID, obf.GameID)
	assert.Equal(t, 1, obf.StockSize)
	assert.Equal(t, 2, obf.WasteSize)
	require.NotNil(t, obf.StockTop)
	assert.Equal(t, "K", obf.StockTop.Rank)

	assert.Nil(t, obf.Foundations[0])
	require.NotNil(t, obf.Foundations[1])
	assert.Equal(t, "A", obf.Foundations[1].Rank)

	pile := obf.Piles[0]
	require.Len(t, pile.Cards, 2)
	assert.False(t, pile.Cards[0].Known)
	assert.Empty(t, pile.Cards[0].Rank)
	assert.True(t, pile.Cards[1].Known)
	assert.Equal(t, "5", pile.Cards[1].Rank)
	assert.True(t, pile.Cards[1].Red)
	assert.Empty(t, obf.Piles[3].Cards)
}
