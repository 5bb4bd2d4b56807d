// internal/move/parse.go
package move

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrSyntax            = errors.New("unrecognised command")
	ErrLeftoverInput     = errors.New("input had text left over after a successful parse")
	ErrRepeatedSelection = errors.New("source and destination pile are the same")
	ErrOutOfRangePiles   = errors.New("pile index out of range")
	ErrOutOfRangeAces    = errors.New("ace pile index out of range")
	ErrAmountTooLarge    = errors.New("amount too large")
)

// maxAmount bounds the pile-to-pile amount; values at or above it are rejected.
const maxAmount = math.MaxUint8

// ParseError reports why a command line could not be turned into a Move.
// Kind is one of the Err* sentinels and is matched by errors.Is.
type ParseError struct {
	Input    string
	Kind     error
	Value    uint32 // offending number for range errors
	Leftover string // unconsumed text for ErrLeftoverInput
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrLeftoverInput:
		return fmt.Sprintf("error while parsing %q: %v: %q", e.Input, e.Kind, e.Leftover)
	case ErrOutOfRangePiles:
		return fmt.Sprintf("error while parsing %q: %v: %d (must be under %d)", e.Input, e.Kind, e.Value, Piles)
	case ErrOutOfRangeAces:
		return fmt.Sprintf("error while parsing %q: %v: %d (must be under %d)", e.Input, e.Kind, e.Value, Foundations)
	case ErrAmountTooLarge:
		return fmt.Sprintf("error while parsing %q: %v: %d (must be under %d)", e.Input, e.Kind, e.Value, maxAmount)
	}
	return fmt.Sprintf("error while parsing %q: %v", e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// rejection is what an alternative returns when its syntax matched but its numbers did not.
type rejection struct {
	kind  error
	value uint32
}

// alternative tries to match a prefix of in. ok is false when the syntax did not match.
type alternative func(in string) (m Move, rest string, rej *rejection, ok bool)

// Order matters: the first alternative that matches wins.
var alternatives = []alternative{
	parseDraw,
	parseStockToPile,
	parseStockToFoundation,
	parsePileToPile,
	parsePileToFoundation,
	parseFoundationToPile,
	parseUndo,
	parseCycle,
	parseQuit,
}

// Parse converts one command line into a Move.
//
// Syntax:
//
//	| Action                                      | Syntax        |
//	|---------------------------------------------+---------------|
//	| Reveal next card in stock                   | `n` or `next` |
//	| Undo                                        | `u` or `undo` |
//	| Move top card in stock to pile X            | `s;X`         |
//	| Move top card in stock to ace X             | `s;aX`        |
//	| Move N cards from pile X to Y               | `mX;Y;N`      |
//	| Move lowest card from pile X to ace stack Y | `mX;aY`       |
//	| Move top card from ace stack Y to pile X    | `maY;X`       |
//	| Put all cards back on the stock, face down  | `cycle`       |
//	| Quit                                        | `q` or `quit` |
//
// The `m` prefix may also be written `m;`.
func Parse(input string) (Move, error) {
	in := strings.TrimSpace(input)

	var first *rejection
	for _, alt := range alternatives {
		m, rest, rej, ok := alt(in)
		if !ok {
			continue
		}
		if rej != nil {
			if first == nil {
				first = rej
			}
			continue
		}
		if rest != "" {
			return nil, &ParseError{Input: input, Kind: ErrLeftoverInput, Leftover: rest}
		}
		return m, nil
	}

	if first != nil {
		return nil, &ParseError{Input: input, Kind: first.kind, Value: first.value}
	}
	return nil, &ParseError{Input: input, Kind: ErrSyntax}
}

// tag consumes the literal s from the front of in.
func tag(in, s string) (string, bool) {
	if strings.HasPrefix(in, s) {
		return in[len(s):], true
	}
	return in, false
}

// oneOf consumes the first literal of opts that prefixes in. Longer forms must come first.
func oneOf(in string, opts ...string) (string, bool) {
	for _, o := range opts {
		if rest, ok := tag(in, o); ok {
			return rest, true
		}
	}
	return in, false
}

// number consumes an unsigned decimal that fits in 32 bits.
func number(in string) (uint32, string, bool) {
	i := 0
	var n uint64
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		n = n*10 + uint64(in[i]-'0')
		if n > math.MaxUint32 {
			return 0, in, false
		}
		i++
	}
	if i == 0 {
		return 0, in, false
	}
	return uint32(n), in[i:], true
}

// movePrefix accepts `m;` or `m`; once `m;` matched there is no retry with the shorter form.
func movePrefix(in string) (string, bool) {
	return oneOf(in, "m;", "m")
}

func pileRange(n uint32) *rejection {
	if n >= Piles {
		return &rejection{kind: ErrOutOfRangePiles, value: n}
	}
	return nil
}

func aceRange(n uint32) *rejection {
	if n >= Foundations {
		return &rejection{kind: ErrOutOfRangeAces, value: n}
	}
	return nil
}

func keyword(m Move, opts ...string) alternative {
	return func(in string) (Move, string, *rejection, bool) {
		rest, ok := oneOf(in, opts...)
		if !ok {
			return nil, in, nil, false
		}
		return m, rest, nil, true
	}
}

var (
	parseDraw  = keyword(Draw{}, "next", "n")
	parseUndo  = keyword(Undo{}, "undo", "u")
	parseCycle = keyword(Cycle{}, "cycle")
	parseQuit  = keyword(Quit{}, "quit", "q")
)

func parseStockToPile(in string) (Move, string, *rejection, bool) {
	rest, ok := tag(in, "s;")
	if !ok {
		return nil, in, nil, false
	}
	n, rest, ok := number(rest)
	if !ok {
		return nil, in, nil, false
	}
	if rej := pileRange(n); rej != nil {
		return nil, rest, rej, true
	}
	return StockToPile{Pile: uint8(n)}, rest, nil, true
}

func parseStockToFoundation(in string) (Move, string, *rejection, bool) {
	rest, ok := tag(in, "s;a")
	if !ok {
		return nil, in, nil, false
	}
	n, rest, ok := number(rest)
	if !ok {
		return nil, in, nil, false
	}
	if rej := aceRange(n); rej != nil {
		return nil, rest, rej, true
	}
	return StockToFoundation{Foundation: uint8(n)}, rest, nil, true
}

func parsePileToPile(in string) (Move, string, *rejection, bool) {
	rest, ok := movePrefix(in)
	if !ok {
		return nil, in, nil, false
	}
	var x, y, n uint32
	if x, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}
	if rest, ok = tag(rest, ";"); !ok {
		return nil, in, nil, false
	}
	if y, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}
	if rest, ok = tag(rest, ";"); !ok {
		return nil, in, nil, false
	}
	if n, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}

	switch {
	case x >= Piles || y >= Piles:
		return nil, rest, pileRange(max(x, y)), true
	case x == y:
		return nil, rest, &rejection{kind: ErrRepeatedSelection, value: x}, true
	case n >= maxAmount:
		return nil, rest, &rejection{kind: ErrAmountTooLarge, value: n}, true
	}
	return PileToPile{From: uint8(x), To: uint8(y), Amount: uint8(n)}, rest, nil, true
}

func parsePileToFoundation(in string) (Move, string, *rejection, bool) {
	rest, ok := movePrefix(in)
	if !ok {
		return nil, in, nil, false
	}
	var pile, ace uint32
	if pile, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}
	if rest, ok = tag(rest, ";a"); !ok {
		return nil, in, nil, false
	}
	if ace, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}

	if rej := pileRange(pile); rej != nil {
		return nil, rest, rej, true
	}
	if rej := aceRange(ace); rej != nil {
		return nil, rest, rej, true
	}
	return PileToFoundation{Pile: uint8(pile), Foundation: uint8(ace)}, rest, nil, true
}

func parseFoundationToPile(in string) (Move, string, *rejection, bool) {
	rest, ok := movePrefix(in)
	if !ok {
		return nil, in, nil, false
	}
	var ace, pile uint32
	if rest, ok = tag(rest, "a"); !ok {
		return nil, in, nil, false
	}
	if ace, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}
	if rest, ok = tag(rest, ";"); !ok {
		return nil, in, nil, false
	}
	if pile, rest, ok = number(rest); !ok {
		return nil, in, nil, false
	}

	if rej := pileRange(pile); rej != nil {
		return nil, rest, rej, true
	}
	if rej := aceRange(ace); rej != nil {
		return nil, rest, rej, true
	}
	return FoundationToPile{Foundation: uint8(ace), Pile: uint8(pile)}, rest, nil, true
}
