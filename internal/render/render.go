// internal/render/render.go
package render

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/solitario/internal/game"
	"github.com/pterm/pterm"
)

// Unknown stands in for a face-down or missing card.
const Unknown = "--"

// Renderer turns the player's view of a table into terminal text.
type Renderer struct {
	// Color paints red suits with pterm. Turn it off for plain output.
	Color bool
}

// Card formats a single card, or Unknown for nil and face-down cards.
func (r Renderer) Card(c *game.ObfCard) string {
	if c == nil || !c.Known {
		return Unknown
	}
	text := c.Rank + c.Suit
	if r.Color && c.Red {
		return pterm.LightRed(text)
	}
	return text
}

// Table lays out the stock line, the foundation tops and the tableau rows.
// Row d holds the card at depth d of every pile; a pile shorter than d
// leaves its column blank.
func (r Renderer) Table(s game.ObfTableState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Stock: Top is %s ---- (%d cards in it)\n\n", r.Card(s.StockTop), s.StockSize)

	tops := make([]string, len(s.Foundations))
	for i, f := range s.Foundations {
		tops[i] = r.Card(f)
	}
	fmt.Fprintf(&b, "Ace piles (top cards):\t%s\n\n", strings.Join(tops, "\t"))

	b.WriteString("Main area:\n")
	rows := 1
	for _, p := range s.Piles {
		if len(p.Cards) > rows {
			rows = len(p.Cards)
		}
	}
	for depth := 0; depth < rows; depth++ {
		for _, p := range s.Piles {
			if depth < len(p.Cards) {
				b.WriteString(r.Card(&p.Cards[depth]))
			}
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nMoves: %d\n", s.Moves)
	return b.String()
}
