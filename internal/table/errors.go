package table

import "errors"

// Legality errors.
var (
	ErrIllegalPlacement  = errors.New("card cannot be placed on that pile")
	ErrIllegalFoundation = errors.New("card cannot be placed on that ace pile")
)

// Precondition errors.
var (
	ErrNoRevealedCards      = errors.New("pile has no revealed cards")
	ErrFoundationEmpty      = errors.New("ace pile has no card to take")
	ErrStockEmpty           = errors.New("stock has no cards")
	ErrAmountZero           = errors.New("amount of cards to move was zero")
	ErrNotEnoughRevealed    = errors.New("not enough revealed cards in pile")
	ErrPileOutOfRange       = errors.New("pile index out of range")
	ErrFoundationOutOfRange = errors.New("ace pile index out of range")
	ErrSamePile             = errors.New("source and destination pile are the same")
)

var (
	ErrUndoUnsupported = errors.New("undo is not implemented")
	ErrUnknownMove     = errors.New("unknown move")
	ErrInvalidState    = errors.New("invalid table state")
)
