package tictactoe

import (
	"fmt"
	"iter"

	"negamax/game"
)

// WinScore is the magnitude of a decided game at depth 1. Deeper results are divided by the depth
// so that quicker wins and slower losses rank higher.
const WinScore = 1000.0

// Game is a 3x3 tic-tac-toe position plus the history of enqueued moves.
type Game struct {
	board   Board
	history []Coord
}

var (
	_ game.State      = (*Game)(nil)
	_ game.WinChecker = (*Game)(nil)
)

func New() *Game {
	return &Game{}
}

// FromRows builds a game from a board layout, with an empty history.
func FromRows(rows [Size][Size]game.Side) *Game {
	return &Game{board: Board(rows)}
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Cell(c Coord) game.Side {
	return g.board.at(c)
}

// History returns the number of moves that can be undone.
func (g *Game) History() int {
	return len(g.history)
}

// Validate checks that move is an allowed coordinate. Move itself does not check.
func (g *Game) Validate(move Coord) error {
	if !move.inBounds() {
		return fmt.Errorf("%w: %v is off the board", ErrInvalidCoord, move)
	}
	if g.board.at(move) != Empty {
		return fmt.Errorf("%w: %v", ErrOccupied, move)
	}
	return nil
}

// AllowedMoves yields the empty cells in row-major order. Every side may play any empty cell.
func (g *Game) AllowedMoves(side game.Side) iter.Seq[game.Move] {
	return func(yield func(game.Move) bool) {
		for i := 0; i < Size; i++ {
			for j := 0; j < Size; j++ {
				if g.board[i][j] != Empty {
					continue
				}
				if !yield(Coord{Row: i, Col: j}) {
					return
				}
			}
		}
	}
}

func (g *Game) Move(side game.Side, move game.Move, enqueue bool) {
	c := move.(Coord)
	if enqueue {
		g.history = append(g.history, c)
	}
	g.board[c.Row][c.Col] = side
}

func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}
	last := len(g.history) - 1
	c := g.history[last]
	g.history = g.history[:last]
	g.board[c.Row][c.Col] = Empty
}

func (g *Game) Other(side game.Side) game.Side {
	return side.Other()
}

// Score is +WinScore/depth if side has won, -WinScore/depth if its opponent has, 0 otherwise.
func (g *Game) Score(side game.Side, depth int) float64 {
	switch {
	case g.IsWinner(side):
		return WinScore / float64(depth)
	case g.IsWinner(side.Other()):
		return -WinScore / float64(depth)
	default:
		return 0
	}
}

func (g *Game) IsOver() bool {
	return g.board.hasLine(X) || g.board.hasLine(O) || g.board.full()
}

func (g *Game) IsWinner(side game.Side) bool {
	return g.board.hasLine(side)
}

// CanWin tries every allowed move for side and reports whether one completes a line. A finished
// game has no moves left, so it always reports false.
func (g *Game) CanWin(side game.Side) bool {
	if side == Empty || g.IsOver() {
		return false
	}
	for move := range g.AllowedMoves(side) {
		g.Move(side, move, true)
		won := g.IsWinner(side)
		g.Undo()
		if won {
			return true
		}
	}
	return false
}

func (g *Game) String() string {
	return g.board.String()
}
