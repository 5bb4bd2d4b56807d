// internal/table/table.go
package table

import (
	"fmt"
	"math/rand"

	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/jason-s-yu/solitario/internal/move"
)

const (
	Piles       = move.Piles
	Foundations = move.Foundations

	// dealt is the number of cards placed on the tableau by the deal: 1+2+...+7.
	dealt = Piles * (Piles + 1) / 2
)

type pile struct {
	cards    []cards.Card
	revealed int // counted from the tail
}

func (p *pile) tail() *cards.Card {
	if len(p.cards) == 0 {
		return nil
	}
	c := p.cards[len(p.cards)-1]
	return &c
}

// settle restores the visibility invariant after cards leave the pile.
func (p *pile) settle() {
	if p.revealed > len(p.cards) {
		p.revealed = len(p.cards)
	}
	if p.revealed <= 0 && len(p.cards) > 0 {
		p.revealed = 1
	}
	if p.revealed < 0 {
		p.revealed = 0
	}
}

type foundation struct {
	cards []cards.Card
}

func (f *foundation) top() *cards.Card {
	if len(f.cards) == 0 {
		return nil
	}
	c := f.cards[len(f.cards)-1]
	return &c
}

// Table is the playing field of one game. It is not safe for concurrent use.
type Table struct {
	piles       [Piles]pile
	foundations [Foundations]foundation
	stock       *cards.Deck
	waste       *cards.Deck
	moves       int
}

// New shuffles a fresh deck of kind k with rng and deals it.
func New(rng *rand.Rand, k cards.Kind) *Table {
	t, err := NewFromDeck(cards.Shuffled(rng, k))
	if err != nil {
		// both deck kinds hold more cards than the deal needs
		panic(err)
	}
	return t
}

// NewFromDeck deals a copy of d: pile i receives i+1 cards from the top of the
// deck with only the last one revealed, and the rest of the deck becomes the stock.
func NewFromDeck(d *cards.Deck) (*Table, error) {
	if d.Len() < dealt {
		return nil, fmt.Errorf("%w: deck of %d cards cannot fill the tableau (%d needed)", ErrInvalidState, d.Len(), dealt)
	}
	deck := d.Clone()
	t := &Table{waste: cards.NewDeck()}
	for i := range t.piles {
		t.piles[i].revealed = 1
		for j := 0; j <= i; j++ {
			c, _ := deck.TakeFromTop()
			t.piles[i].cards = append(t.piles[i].cards, c)
		}
	}
	t.stock = deck
	return t, nil
}

// PileState is a copy of one tableau pile.
type PileState struct {
	Cards    []cards.Card `json:"cards"`
	Revealed int          `json:"revealed"`
}

// Hidden is the number of face-down cards at the start of the pile.
func (p PileState) Hidden() int { return len(p.Cards) - p.Revealed }

// Visible returns the face-up run, deepest card first.
func (p PileState) Visible() []cards.Card { return p.Cards[p.Hidden():] }

// State is a deep copy of a table. Stock and Waste are listed bottom to top.
type State struct {
	Piles       [Piles]PileState          `json:"piles"`
	Foundations [Foundations][]cards.Card `json:"foundations"`
	Stock       []cards.Card              `json:"stock"`
	Waste       []cards.Card              `json:"waste"`
	Moves       int                       `json:"moves"`
}

// FromState builds a table from an explicit state. It rejects revealed counts
// outside the pile, non-empty piles with nothing revealed, and duplicate cards.
func FromState(s State) (*Table, error) {
	t := &Table{
		stock: cards.NewDeck(s.Stock...),
		waste: cards.NewDeck(s.Waste...),
		moves: s.Moves,
	}
	for i, p := range s.Piles {
		if p.Revealed < 0 || p.Revealed > len(p.Cards) {
			return nil, fmt.Errorf("%w: pile %d reveals %d of %d cards", ErrInvalidState, i, p.Revealed, len(p.Cards))
		}
		if len(p.Cards) > 0 && p.Revealed == 0 {
			return nil, fmt.Errorf("%w: pile %d has no revealed card", ErrInvalidState, i)
		}
		t.piles[i] = pile{cards: append([]cards.Card(nil), p.Cards...), revealed: p.Revealed}
	}
	for i, f := range s.Foundations {
		t.foundations[i] = foundation{cards: append([]cards.Card(nil), f...)}
	}

	seen := make(map[cards.Card]bool)
	for _, c := range t.AllCards() {
		if seen[c] {
			return nil, fmt.Errorf("%w: card %s appears twice", ErrInvalidState, c)
		}
		seen[c] = true
	}
	return t, nil
}

// Snapshot returns a deep copy of the table.
func (t *Table) Snapshot() State {
	s := State{
		Stock: t.stock.Cards(),
		Waste: t.waste.Cards(),
		Moves: t.moves,
	}
	for i := range t.piles {
		s.Piles[i] = t.Pile(i)
	}
	for i := range t.foundations {
		s.Foundations[i] = t.Foundation(i)
	}
	return s
}

// Pile returns a copy of tableau pile i. It panics if i is out of range.
func (t *Table) Pile(i int) PileState {
	p := t.piles[i]
	return PileState{Cards: append([]cards.Card{}, p.cards...), Revealed: p.revealed}
}

// Foundation returns a copy of foundation i, lowest card first.
func (t *Table) Foundation(i int) []cards.Card {
	return append([]cards.Card{}, t.foundations[i].cards...)
}

// FoundationTop returns the top card of foundation i, if any.
func (t *Table) FoundationTop(i int) (cards.Card, bool) {
	if c := t.foundations[i].top(); c != nil {
		return *c, true
	}
	return cards.Card{}, false
}

// StockTop is the card a stock move would play.
func (t *Table) StockTop() (cards.Card, bool) { return t.stock.Top() }

func (t *Table) StockLen() int { return t.stock.Len() }
func (t *Table) WasteLen() int { return t.waste.Len() }

// Moves is the number of counted moves applied so far.
func (t *Table) Moves() int { return t.moves }

// Won reports whether every tableau card is face up. Empty piles count as fully revealed.
func (t *Table) Won() bool {
	for i := range t.piles {
		if len(t.piles[i].cards) != t.piles[i].revealed {
			return false
		}
	}
	return true
}

// AllCards lists every card on the table in no particular order.
func (t *Table) AllCards() []cards.Card {
	all := append(t.stock.Cards(), t.waste.Cards()...)
	for i := range t.piles {
		all = append(all, t.piles[i].cards...)
	}
	for i := range t.foundations {
		all = append(all, t.foundations[i].cards...)
	}
	return all
}
