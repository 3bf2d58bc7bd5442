package xiangqi

import (
	"errors"
	"fmt"
)

// Move rejection causes, in the order AttemptMove checks them.
var (
	ErrOffBoard    = errors.New("coordinate off the board")
	ErrNoPiece     = errors.New("no piece on source point")
	ErrWrongTurn   = errors.New("piece does not belong to the side to move")
	ErrOwnPiece    = errors.New("destination holds a piece of the same color")
	ErrGameOver    = errors.New("game already decided")
	ErrUnreachable = errors.New("destination not reachable by the piece")
	ErrSelfCheck   = errors.New("move leaves own general in check")

	ErrInvalidFEN = errors.New("invalid FEN")
)

// MoveError is returned by AttemptMove for every rejected move.
// It unwraps to exactly one of the sentinel errors above.
type MoveError struct {
	Err  error
	From Coord
	To   Coord
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s-%s rejected: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

func reject(err error, from, to Coord) *MoveError {
	return &MoveError{Err: err, From: from, To: to}
}
