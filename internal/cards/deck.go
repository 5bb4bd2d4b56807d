// internal/cards/deck.go
package cards

import (
	"fmt"
	"math/rand"
)

// Deck is an ordered pile of cards. Index 0 is the bottom, the last index is the top.
type Deck struct {
	cards []Card
}

// NewDeck wraps the given cards, listed bottom to top.
func NewDeck(cs ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cs))}
	copy(d.cards, cs)
	return d
}

func (d *Deck) Len() int { return len(d.cards) }
func (d *Deck) IsEmpty() bool { return len(d.cards) == 0 }
func (d *Deck) PushToTop(c Card) { d.cards = append(d.cards, c) }

// Top returns the top card, or false if the deck is empty.
func (d *Deck) Top() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Bottom returns the bottom card, or false if the deck is empty.
func (d *Deck) Bottom() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

func (d *Deck) TakeFromTop() (Card, bool) {
	c, ok := d.Top()
	if ok {
		d.cards = d.cards[:len(d.cards)-1]
	}
	return c, ok
}

func (d *Deck) TakeFromBottom() (Card, bool) {
	c, ok := d.Bottom()
	if ok {
		d.cards = d.cards[1:]
	}
	return c, ok
}

func (d *Deck) PushToBottom(c Card) {
	d.cards = append(d.cards, Card{})
	copy(d.cards[1:], d.cards)
	d.cards[0] = c
}

// MoveAllTo empties d into dest, pushing each card taken from d's bottom onto dest's bottom.
func (d *Deck) MoveAllTo(dest *Deck) {
	for _, c := range d.cards {
		dest.PushToBottom(c)
	}
	d.cards = nil
}

// Cards returns a copy of the deck contents, bottom to top.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Clone() *Deck { return NewDeck(d.cards...) }

// Kind selects which physical deck is assembled.
type Kind string

const (
	// Short is the 40-card deck: 1..7, Jack, Knight, King.
	Short Kind = "short"
	// Long is the 52-card deck: 1..10, Jack, Knight, King.
	Long Kind = "long"
)

// ParseKind validates a deck kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Short, Long:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown deck kind %q (want %q or %q)", s, Short, Long)
}

// Ranks lists the ranks of the deck kind in ascending order.
func (k Kind) Ranks() []Rank {
	top := uint8(10)
	if k == Short {
		top = 7
	}
	ranks := make([]Rank, 0, top+3)
	for n := uint8(1); n <= top; n++ {
		ranks = append(ranks, Num(n))
	}
	return append(ranks, RankJack, RankKnight, RankKing)
}

// Size is the number of cards in a full deck of this kind.
func (k Kind) Size() int { return len(k.Ranks()) * len(Suits) }

// Ordered builds the unshuffled deck: for each rank, one card per suit.
func Ordered(k Kind) *Deck {
	ranks := k.Ranks()
	d := &Deck{cards: make([]Card, 0, len(ranks)*len(Suits))}
	for _, r := range ranks {
		for _, s := range Suits {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
	return d
}

// Shuffled builds a deck of kind k and applies a Fisher-Yates shuffle drawn from rng.
func Shuffled(rng *rand.Rand, k Kind) *Deck {
	d := Ordered(k)
	d.Shuffle(rng)
	return d
}

// Shuffle permutes the deck in place, walking from the last index down to 1.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
