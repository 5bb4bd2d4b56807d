// internal/table/rules.go
package table

import "github.com/jason-s-yu/solitario/internal/cards"

// Legal reports whether added may be placed on a tableau pile whose tail is base.
// A nil base is an empty pile, which only takes a King. Otherwise added must be
// exactly one rank below base and of the other colour.
func Legal(added cards.Card, base *cards.Card) bool {
	if base == nil {
		return added.IsKing()
	}
	return added.Value()+1 == base.Value() && !added.SameColor(*base)
}

// FoundationAccepts reports whether card may go on a foundation whose top is top.
// An empty foundation takes only an Ace; otherwise the run continues in the same suit.
func FoundationAccepts(top *cards.Card, card cards.Card) bool {
	if top == nil {
		return card.IsAce()
	}
	return top.Suit == card.Suit && top.Value()+1 == card.Value()
}
