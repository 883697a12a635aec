package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"negamax/game"

	"github.com/samber/lo"
)

const Size = 3

// Pieces and their negamax weights
const (
	O     = game.Plus
	X     = game.Minus
	Empty = game.Neutral
)

var (
	ErrInvalidCoord = errors.New("invalid coordinate")
	ErrOccupied     = errors.New("cell occupied")
)

// Coord is a row/column pair, 0-indexed from the top left corner.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// ParseCoord reads a coordinate typed as "row,col".
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q, expected row,col", ErrInvalidCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad row in %q", ErrInvalidCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad column in %q", ErrInvalidCoord, s)
	}
	c := Coord{Row: row, Col: col}
	if !c.inBounds() {
		return Coord{}, fmt.Errorf("%w: %v is off the board", ErrInvalidCoord, c)
	}
	return c, nil
}

type Line [Size]Coord

// winLines holds every row, column and diagonal
var winLines = buildWinLines()

func buildWinLines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for i := 0; i < Size; i++ {
		var row, col Line
		for j := 0; j < Size; j++ {
			row[j] = Coord{Row: i, Col: j}
			col[j] = Coord{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}
	var diag, anti Line
	for i := 0; i < Size; i++ {
		diag[i] = Coord{Row: i, Col: i}
		anti[i] = Coord{Row: i, Col: Size - 1 - i}
	}
	return append(lines, diag, anti)
}

// WinLines returns a copy of the winning coordinate triples.
func WinLines() []Line {
	return append([]Line(nil), winLines...)
}

// Board is the grid of cells, each holding X, O or Empty.
type Board [Size][Size]game.Side

func (b *Board) at(c Coord) game.Side {
	return b[c.Row][c.Col]
}

// Owns reports whether side holds every cell of line.
func (b *Board) Owns(line Line, side game.Side) bool {
	if side == Empty {
		return false
	}
	return lo.EveryBy(line[:], func(c Coord) bool {
		return b.at(c) == side
	})
}

// LineSum adds up the weights of the cells of line. A side owns the line iff the sum is
// Size*side.Weight().
func (b *Board) LineSum(line Line) int {
	return lo.SumBy(line[:], func(c Coord) int {
		return b.at(c).Weight()
	})
}

func (b *Board) hasLine(side game.Side) bool {
	return lo.SomeBy(winLines, func(line Line) bool {
		return b.Owns(line, side)
	})
}

func (b *Board) full() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

func Glyph(side game.Side) string {
	switch side {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

func (b Board) String() string {
	rows := make([]string, Size)
	for i, row := range b {
		rows[i] = " " + strings.Join(lo.Map(row[:], func(cell game.Side, _ int) string {
			return Glyph(cell)
		}), " | ") + "\n"
	}
	return strings.Join(rows, "-----------\n")
}
