package game

import (
	"fmt"
	"strings"
)

// Direction is a move direction. The declaration order is also the
// tie-breaking order used by every search policy.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// MoveOrder enumerates the four directions in tie-breaking order.
var MoveOrder = [...]Direction{Up, Right, Down, Left}

func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a direction label back to its enum value.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", name)
	}
}

// RandomSource is the draw contract the board transitions need. Satisfied by
// *rng.Source.
type RandomSource interface {
	// Next returns a value in [0, 1).
	Next() float64
}

// Board is an immutable N×N grid of tile values (0 = empty). Operations on a
// Board always return a new copy; the zero value is unusable.
type Board struct {
	size  int
	cells []int
}

// NewBoard returns an all-empty square board. Size must be at least 2.
func NewBoard(size int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("board size must be at least 2, got %d", size)
	}
	return Board{size: size, cells: make([]int, size*size)}, nil
}

// FromCells builds a board from row-major cell values. The cell count must be
// a perfect square of size.
func FromCells(size int, cells []int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("board size must be at least 2, got %d", size)
	}
	if len(cells) != size*size {
		return Board{}, fmt.Errorf("board of size %d needs %d cells, got %d", size, size*size, len(cells))
	}
	b := Board{size: size, cells: make([]int, len(cells))}
	copy(b.cells, cells)
	return b, nil
}

func (b Board) Size() int {
	return b.size
}

// At returns the value at row r, column c.
func (b Board) At(r, c int) int {
	return b.cells[r*b.size+c]
}

// Cells returns a copy of the row-major cell values.
func (b Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// WithTile returns a copy of the board with the tile at the row-major index
// set to value.
func (b Board) WithTile(index, value int) Board {
	out := Board{size: b.size, cells: make([]int, len(b.cells))}
	copy(out.cells, b.cells)
	out.cells[index] = value
	return out
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns the row-major indices of all empty cells, in scan order.
// The scan order is part of the spawn contract: the cell-choice draw indexes
// into this slice.
func (b Board) EmptyCells() []int {
	var empty []int
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

func (b Board) MaxTile() int {
	max := 0
	for _, v := range b.cells {
		if v > max {
			max = v
		}
	}
	return max
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rotateCCW maps (r, c) to (n-1-c, r), so that upward motion becomes leftward.
func rotateCCW(cells []int, n int) []int {
	out := make([]int, len(cells))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[(n-1-c)*n+r] = cells[r*n+c]
		}
	}
	return out
}

// rotateCW maps (r, c) to (c, n-1-r), so that downward motion becomes leftward.
func rotateCW(cells []int, n int) []int {
	out := make([]int, len(cells))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c*n+(n-1-r)] = cells[r*n+c]
		}
	}
	return out
}
