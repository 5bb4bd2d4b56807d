// internal/table/apply.go
package table

import (
	"fmt"

	"github.com/jason-s-yu/solitario/internal/cards"
	"github.com/jason-s-yu/solitario/internal/move"
)

// Outcome tells the host loop what to do after a move.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
)

// Apply parses a command line and applies it. Parse errors are returned as
// *move.ParseError and leave the table untouched.
func (t *Table) Apply(input string) (Outcome, error) {
	m, err := move.Parse(input)
	if err != nil {
		return OutcomeContinue, err
	}
	return t.ApplyMove(m)
}

// ApplyMove validates m against the current table and applies it. On error the
// table is unchanged. Every applied move except Cycle advances the move counter.
func (t *Table) ApplyMove(m move.Move) (Outcome, error) {
	var err error
	switch m := m.(type) {
	case move.Quit:
		return OutcomeQuit, nil
	case move.Undo:
		return OutcomeContinue, ErrUndoUnsupported
	case move.Cycle:
		t.cycle()
		return OutcomeContinue, nil
	case move.Draw:
		t.draw()
	case move.StockToPile:
		err = t.stockToPile(int(m.Pile))
	case move.StockToFoundation:
		err = t.stockToFoundation(int(m.Foundation))
	case move.PileToPile:
		err = t.pileToPile(int(m.From), int(m.To), int(m.Amount))
	case move.PileToFoundation:
		err = t.pileToFoundation(int(m.Pile), int(m.Foundation))
	case move.FoundationToPile:
		err = t.foundationToPile(int(m.Foundation), int(m.Pile))
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownMove, m)
	}
	if err != nil {
		return OutcomeContinue, err
	}
	t.moves++
	return OutcomeContinue, nil
}

func checkPile(i int) error {
	if i < 0 || i >= Piles {
		return fmt.Errorf("%w: %d", ErrPileOutOfRange, i)
	}
	return nil
}

func checkFoundation(i int) error {
	if i < 0 || i >= Foundations {
		return fmt.Errorf("%w: %d", ErrFoundationOutOfRange, i)
	}
	return nil
}

func describe(c *cards.Card) string {
	if c == nil {
		return "empty pile"
	}
	return c.String()
}

func illegal(added cards.Card, base *cards.Card) error {
	return fmt.Errorf("%w: %s onto %s", ErrIllegalPlacement, added, describe(base))
}

func illegalFoundation(card cards.Card, top *cards.Card) error {
	return fmt.Errorf("%w: %s onto %s", ErrIllegalFoundation, card, describe(top))
}

// draw passes the stock's top card to the bottom of the waste. With an empty
// stock the waste is turned over and becomes the stock, in the order it was drawn.
func (t *Table) draw() {
	if c, ok := t.stock.TakeFromTop(); ok {
		t.waste.PushToBottom(c)
		return
	}
	t.stock, t.waste = t.waste, t.stock
}

// cycle draws through the whole stock and turns the waste over once more.
func (t *Table) cycle() {
	for !t.stock.IsEmpty() {
		t.draw()
	}
	t.draw()
}

// primeStock puts the most recently passed card back under the player's hand.
func (t *Table) primeStock() {
	if c, ok := t.waste.TakeFromBottom(); ok {
		t.stock.PushToTop(c)
	}
}

func (t *Table) stockToPile(to int) error {
	if err := checkPile(to); err != nil {
		return err
	}
	card, ok := t.stock.Top()
	if !ok {
		return ErrStockEmpty
	}
	dst := &t.piles[to]
	if base := dst.tail(); !Legal(card, base) {
		return illegal(card, base)
	}

	t.stock.TakeFromTop()
	dst.cards = append(dst.cards, card)
	dst.revealed++
	t.primeStock()
	return nil
}

func (t *Table) stockToFoundation(to int) error {
	if err := checkFoundation(to); err != nil {
		return err
	}
	card, ok := t.stock.Top()
	if !ok {
		return ErrStockEmpty
	}
	dst := &t.foundations[to]
	if top := dst.top(); !FoundationAccepts(top, card) {
		return illegalFoundation(card, top)
	}

	t.stock.TakeFromTop()
	dst.cards = append(dst.cards, card)
	t.primeStock()
	return nil
}

// pileToPile moves the trailing run of n cards. Both indices are checked to
// differ before the two pile pointers are taken.
func (t *Table) pileToPile(from, to, n int) error {
	if err := checkPile(from); err != nil {
		return err
	}
	if err := checkPile(to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrSamePile, from)
	}
	if n == 0 {
		return ErrAmountZero
	}

	src, dst := &t.piles[from], &t.piles[to]
	if n > src.revealed {
		return fmt.Errorf("%w: asked for %d, pile %d has %d", ErrNotEnoughRevealed, n, from, src.revealed)
	}
	cut := len(src.cards) - n
	lead := src.cards[cut]
	if base := dst.tail(); !Legal(lead, base) {
		return illegal(lead, base)
	}

	dst.cards = append(dst.cards, src.cards[cut:]...)
	dst.revealed += n
	src.cards = src.cards[:cut:cut]
	src.revealed -= n
	src.settle()
	return nil
}

func (t *Table) pileToFoundation(from, to int) error {
	if err := checkPile(from); err != nil {
		return err
	}
	if err := checkFoundation(to); err != nil {
		return err
	}
	src, dst := &t.piles[from], &t.foundations[to]
	card := src.tail()
	if card == nil || src.revealed == 0 {
		return fmt.Errorf("%w: pile %d", ErrNoRevealedCards, from)
	}
	if top := dst.top(); !FoundationAccepts(top, *card) {
		return illegalFoundation(*card, top)
	}

	dst.cards = append(dst.cards, *card)
	src.cards = src.cards[:len(src.cards)-1]
	src.revealed--
	src.settle()
	return nil
}

func (t *Table) foundationToPile(from, to int) error {
	if err := checkFoundation(from); err != nil {
		return err
	}
	if err := checkPile(to); err != nil {
		return err
	}
	src, dst := &t.foundations[from], &t.piles[to]
	card := src.top()
	if card == nil {
		return fmt.Errorf("%w: ace pile %d", ErrFoundationEmpty, from)
	}
	if base := dst.tail(); !Legal(*card, base) {
		return illegal(*card, base)
	}

	dst.cards = append(dst.cards, *card)
	dst.revealed++
	src.cards = src.cards[:len(src.cards)-1]
	return nil
}
