package game

import (
	"fmt"
	"iter"
)

// Side identifies who acts. The value doubles as the negamax weight: one player is +1, the other
// -1, and Neutral (0) marks empty cells in concrete games.
type Side int8

const (
	Neutral Side = 0
	Plus    Side = 1
	Minus   Side = -1
)

func (s Side) Weight() int {
	return int(s)
}

// Other returns the opponent. Neutral maps to itself.
func (s Side) Other() Side {
	return -s
}

// Move is an opaque position where an action applies. Implementations must be comparable so moves
// can key a map.
type Move interface {
	fmt.Stringer
}

// State is a mutable two-player, perfect-information, zero-sum game state. The searcher explores
// it by applying moves and undoing them, never by copying.
type State interface {
	// AllowedMoves yields every move available to side on the live state, in a stable order.
	AllowedMoves(side Side) iter.Seq[Move]
	// Move applies move as side, assuming it is allowed. With enqueue set, the move is pushed on
	// the undo history.
	Move(side Side, move Move, enqueue bool)
	// Undo reverses the most recently enqueued move. No-op when the history is empty.
	Undo()
	Other(side Side) Side
	// Score evaluates the current state from side's perspective at the given search depth.
	Score(side Side, depth int) float64
	IsOver() bool
	IsWinner(side Side) bool
}

// WinChecker is implemented by states that can tell, without net mutation, whether side has a move
// that wins immediately.
type WinChecker interface {
	CanWin(side Side) bool
}
