// internal/cards/card.go
package cards

import (
	"fmt"
	"strconv"
)

// Suit is one of the four suits of an Italian-suited deck.
type Suit uint8

const (
	Coins Suit = iota
	Cups
	Clubs
	Swords
)

// Suits lists every suit in deal order.
var Suits = [...]Suit{Coins, Cups, Clubs, Swords}

// Color is the two-way partition of suits used for alternating placement.
type Color uint8

const (
	Red Color = iota
	Black
)

// Color returns the colour group of the suit. Coins and Swords form one
// group, Cups and Clubs the other.
func (s Suit) Color() Color {
	switch s {
	case Coins, Swords:
		return Red
	default:
		return Black
	}
}

func (s Suit) String() string {
	switch s {
	case Coins:
		return "co"
	case Cups:
		return "cu"
	case Clubs:
		return "cl"
	case Swords:
		return "sw"
	default:
		return "?"
	}
}

// Face distinguishes numbered ranks from the three court cards.
type Face uint8

const (
	Numeric Face = iota
	Jack
	Knight
	King
)

// Rank is a card rank. Number is only meaningful when Face is Numeric.
type Rank struct {
	Face   Face
	Number uint8
}

// Num returns the numbered rank n.
func Num(n uint8) Rank { return Rank{Face: Numeric, Number: n} }

var (
	RankJack   = Rank{Face: Jack}
	RankKnight = Rank{Face: Knight}
	RankKing   = Rank{Face: King}
)

// Value maps a rank onto the 13-rank scale used by every legality check.
func (r Rank) Value() int {
	switch r.Face {
	case Jack:
		return 11
	case Knight:
		return 12
	case King:
		return 13
	default:
		return int(r.Number)
	}
}

// ShortValue maps a rank onto the 10-rank scale of the 40-card deck.
func (r Rank) ShortValue() int {
	switch r.Face {
	case Jack:
		return 8
	case Knight:
		return 9
	case King:
		return 10
	default:
		return int(r.Number)
	}
}

func (r Rank) String() string {
	switch r.Face {
	case Jack:
		return "J"
	case Knight:
		return "N"
	case King:
		return "K"
	}
	if r.Number == 1 {
		return "A"
	}
	return strconv.Itoa(int(r.Number))
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// New builds a card from a long-deck value (1..13).
func New(suit Suit, value int) (Card, error) {
	switch {
	case value >= 1 && value <= 10:
		return Card{Suit: suit, Rank: Num(uint8(value))}, nil
	case value == 11:
		return Card{Suit: suit, Rank: RankJack}, nil
	case value == 12:
		return Card{Suit: suit, Rank: RankKnight}, nil
	case value == 13:
		return Card{Suit: suit, Rank: RankKing}, nil
	}
	return Card{}, fmt.Errorf("card value %d out of range 1..13", value)
}

// MustNew is New for values known to be valid, e.g. in tests and deck assembly.
func MustNew(suit Suit, value int) Card {
	c, err := New(suit, value)
	if err != nil {
		panic(err)
	}
	return c
}

// Value is the long-deck value of the card's rank.
func (c Card) Value() int { return c.Rank.Value() }

// IsKing reports whether the card is a King.
func (c Card) IsKing() bool { return c.Rank.Face == King }

// IsAce reports whether the card is the first numbered rank.
func (c Card) IsAce() bool { return c.Value() == 1 }

// SameColor reports whether both cards fall in the same colour group.
func (c Card) SameColor(o Card) bool { return c.Suit.Color() == o.Suit.Color() }

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
