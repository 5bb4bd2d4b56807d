package models

import "github.com/jason-s-yu/solitario/internal/cards"

// Card is the wire form of a playing card.
type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
	Red   bool   `json:"red"`
}

// NewCard converts an engine card into its wire form.
func NewCard(c cards.Card) Card {
	return Card{
		Suit:  c.Suit.String(),
		Rank:  c.Rank.String(),
		Value: c.Value(),
		Red:   c.Suit.Color() == cards.Red,
	}
}

// NewCards converts a slice of engine cards, preserving order.
func NewCards(cs []cards.Card) []Card {
	out := make([]Card, len(cs))
	for i, c := range cs {
		out[i] = NewCard(c)
	}
	return out
}
