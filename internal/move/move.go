// internal/move/move.go
package move

import "fmt"

const (
	// Piles is the number of tableau piles.
	Piles = 7
	// Foundations is the number of foundation piles.
	Foundations = 4
)

// Move is a parsed player command. The set of implementations is closed.
type Move interface {
	isMove()
	// Type is a stable identifier used in logs and journal records.
	Type() string
}

// Draw reveals the next card of the stock.
type Draw struct{}

// Undo is accepted by the grammar but not supported by the table.
type Undo struct{}

// Quit asks the host loop to stop.
type Quit struct{}

// Cycle puts every drawn card back on the stock.
type Cycle struct{}

// StockToPile moves the stock's top card onto a tableau pile.
type StockToPile struct {
	Pile uint8
}

// StockToFoundation moves the stock's top card onto a foundation.
type StockToFoundation struct {
	Foundation uint8
}

// PileToPile moves the trailing Amount cards of one tableau pile onto another.
type PileToPile struct {
	From   uint8
	To     uint8
	Amount uint8
}

// PileToFoundation moves the lowest revealed card of a pile onto a foundation.
type PileToFoundation struct {
	Pile       uint8
	Foundation uint8
}

// FoundationToPile moves the top card of a foundation back onto a pile.
type FoundationToPile struct {
	Foundation uint8
	Pile       uint8
}

func (Draw) isMove()              {}
func (Undo) isMove()              {}
func (Quit) isMove()              {}
func (Cycle) isMove()             {}
func (StockToPile) isMove()       {}
func (StockToFoundation) isMove() {}
func (PileToPile) isMove()        {}
func (PileToFoundation) isMove()  {}
func (FoundationToPile) isMove()  {}

func (Draw) Type() string              { return "draw" }
func (Undo) Type() string              { return "undo" }
func (Quit) Type() string              { return "quit" }
func (Cycle) Type() string             { return "cycle" }
func (StockToPile) Type() string       { return "stock_to_pile" }
func (StockToFoundation) Type() string { return "stock_to_foundation" }
func (PileToPile) Type() string        { return "pile_to_pile" }
func (PileToFoundation) Type() string  { return "pile_to_foundation" }
func (FoundationToPile) Type() string  { return "foundation_to_pile" }

func (m StockToPile) String() string       { return fmt.Sprintf("s;%d", m.Pile) }
func (m StockToFoundation) String() string { return fmt.Sprintf("s;a%d", m.Foundation) }
func (m PileToPile) String() string        { return fmt.Sprintf("m%d;%d;%d", m.From, m.To, m.Amount) }
func (m PileToFoundation) String() string  { return fmt.Sprintf("m%d;a%d", m.Pile, m.Foundation) }
func (m FoundationToPile) String() string  { return fmt.Sprintf("ma%d;%d", m.Foundation, m.Pile) }
func (Draw) String() string                { return "next" }
func (Undo) String() string                { return "undo" }
func (Quit) String() string                { return "quit" }
func (Cycle) String() string               { return "cycle" }

// Payload flattens the move's operands for journal records.
func Payload(m Move) map[string]interface{} {
	switch m := m.(type) {
	case StockToPile:
		return map[string]interface{}{"pile": m.Pile}
	case StockToFoundation:
		return map[string]interface{}{"foundation": m.Foundation}
	case PileToPile:
		return map[string]interface{}{"from": m.From, "to": m.To, "amount": m.Amount}
	case PileToFoundation:
		return map[string]interface{}{"pile": m.Pile, "foundation": m.Foundation}
	case FoundationToPile:
		return map[string]interface{}{"foundation": m.Foundation, "pile": m.Pile}
	}
	return nil
}

// Cheatsheet is the command reference shown to players.
const Cheatsheet = `| Action                                      | Syntax        |
|---------------------------------------------+---------------|
| Reveal next card in stock                   | ` + "`n` or `next`" + ` |
| Undo                                        | ` + "`u` or `undo`" + ` |
| Move top card in stock to pile X            | ` + "`s;X`" + `         |
| Move top card in stock to ace X             | ` + "`s;aX`" + `        |
| Move N cards from pile X to Y               | ` + "`mX;Y;N`" + `      |
| Move lowest card from pile X to ace stack Y | ` + "`mX;aY`" + `       |
| Move top card from ace stack Y to pile X    | ` + "`maY;X`" + `       |
| Put all cards back on the stock, face down  | ` + "`cycle`" + `       |
| Quit                                        | ` + "`q` or `quit`" + ` |`
