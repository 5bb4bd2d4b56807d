package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	assert.Equal(t, Card{Suit: "sw", Rank: "K", Value: 13, Red: true}, NewCard(cards.MustNew(cards.Swords, 13)))
	assert.Equal(t, Card{Suit: "cu", Rank: "A", Value: 1}, NewCard(cards.MustNew(cards.Cups, 1)))
	assert.Len(t, NewCards(cards.Ordered(cards.Short).Cards()), 40)
}

func TestGameActionRecordJSON(t *testing.T) {
	rec := GameActionRecord{
		GameID:        uuid.New(),
		ActionIndex:   3,
		ActionType:    "pile_to_pile",
		ActionPayload: map[string]interface{}{"from": 1},
		Moves:         2,
		Timestamp:     1700000000000,
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, rec.GameID.String(), raw["game_id"])
	assert.Equal(t, "pile_to_pile", raw["action_type"])
	assert.Equal(t, float64(2), raw["moves"])
	assert.Equal(t, false, raw["won"])
}
