// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/solitario/internal/models"
	"github.com/jason-s-yu/solitario/internal/table"
)

// ObfCard is a card as the player sees it: face-down cards carry no details.
type ObfCard struct {
	Known bool `json:"known"`
	models.Card
}

// ObfPile is one tableau pile, deepest card first.
type ObfPile struct {
	Cards    []ObfCard `json:"cards"`
	Revealed int       `json:"revealed"`
}

// ObfTableState is the player's view of the table, used for rendering.
type ObfTableState struct {
	GameID      uuid.UUID  `json:"game_id"`
	GameOver    bool       `json:"gameOver"`
	Moves       int        `json:"moves"`
	StockSize   int        `json:"stockSize"`
	WasteSize   int        `json:"wasteSize"`
	StockTop    *ObfCard   `json:"stockTop,omitempty"`
	Foundations []*ObfCard `json:"foundations"` // top card of each, nil when empty
	Piles       []ObfPile  `json:"piles"`
}

func known(c models.Card) *ObfCard {
	return &ObfCard{Known: true, Card: c}
}

// GetCurrentObfuscatedState builds the player's view of the table.
func (g *Game) GetCurrentObfuscatedState() ObfTableState {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	snap := g.table.Snapshot()
	obf := ObfTableState{
		GameID:      g.ID,
		GameOver:    g.GameOver,
		Moves:       snap.Moves,
		StockSize:   len(snap.Stock),
		WasteSize:   len(snap.Waste),
		Foundations: make([]*ObfCard, len(snap.Foundations)),
		Piles:       make([]ObfPile, len(snap.Piles)),
	}
	if top, ok := g.table.StockTop(); ok {
		obf.StockTop = known(models.NewCard(top))
	}
	for i := range snap.Foundations {
		if top, ok := g.table.FoundationTop(i); ok {
			obf.Foundations[i] = known(models.NewCard(top))
		}
	}
	for i, p := range snap.Piles {
		obf.Piles[i] = obfPile(p)
	}
	return obf
}

func obfPile(p table.PileState) ObfPile {
	out := ObfPile{Cards: make([]ObfCard, len(p.Cards)), Revealed: p.Revealed}
	hidden := p.Hidden()
	for i, c := range p.Cards {
		if i < hidden {
			continue
		}
		out.Cards[i] = ObfCard{Known: true, Card: models.NewCard(c)}
	}
	return out
}
