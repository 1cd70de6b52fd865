package game

import (
	"errors"
	"fmt"
)

// MoveResult is the outcome of a single transition. Moved=false implies the
// board is identical to the input and Score is 0.
type MoveResult struct {
	Board Board
	Score int
	Moved bool
}

// ApplyMove slides and merges the board in the given direction. The input
// board is never mutated. Applying a move to a terminal board is legal and
// returns Moved=false.
//
// The board is rotated so the direction aligns leftward, every row gets one
// canonical left pass, and the result is rotated back.
func ApplyMove(b Board, dir Direction) (MoveResult, error) {
	if b.size == 0 {
		return MoveResult{}, errors.New("board is not initialized")
	}
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("invalid direction %d", int(dir))
	}

	n := b.size
	work := toLeftFrame(b.cells, n, dir)

	score := 0
	for r := 0; r < n; r++ {
		score += slideRowLeft(work[r*n : (r+1)*n])
	}

	out := fromLeftFrame(work, n, dir)
	moved := false
	for i := range out {
		if out[i] != b.cells[i] {
			moved = true
			break
		}
	}
	if !moved {
		return MoveResult{Board: b, Score: 0, Moved: false}, nil
	}
	return MoveResult{Board: Board{size: n, cells: out}, Score: score, Moved: true}, nil
}

func toLeftFrame(cells []int, n int, dir Direction) []int {
	switch dir {
	case Up:
		return rotateCCW(cells, n)
	case Right:
		return rotateCW(rotateCW(cells, n), n)
	case Down:
		return rotateCW(cells, n)
	default: // Left
		out := make([]int, len(cells))
		copy(out, cells)
		return out
	}
}

func fromLeftFrame(cells []int, n int, dir Direction) []int {
	switch dir {
	case Up:
		return rotateCW(cells, n)
	case Right:
		return rotateCW(rotateCW(cells, n), n)
	case Down:
		return rotateCCW(cells, n)
	default:
		return cells
	}
}

// slideRowLeft performs the canonical left pass on one row in place: drop
// zeros preserving order, merge equal adjacent pairs left to right advancing
// past both source tiles, pad with zeros. Returns the sum of merged values.
func slideRowLeft(row []int) int {
	n := len(row)
	tiles := make([]int, 0, n)
	for _, v := range row {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	score := 0
	write := 0
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			row[write] = merged
			score += merged
			i += 2
		} else {
			row[write] = tiles[i]
			i++
		}
		write++
	}
	for ; write < n; write++ {
		row[write] = 0
	}
	return score
}

// SpawnTile places one new tile in a uniformly chosen empty cell: 4 with
// probability prob4, 2 otherwise. The cell-index draw happens before the
// value draw; this order is part of the reproducibility contract. A full
// board is returned unchanged without consuming any draws.
func SpawnTile(b Board, src RandomSource, prob4 float64) Board {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b
	}

	idx := int(src.Next() * float64(len(empty)))
	if idx >= len(empty) { // Next() < 1 makes this unreachable, but guard float edge
		idx = len(empty) - 1
	}
	value := 2
	if src.Next() < prob4 {
		value = 4
	}
	return b.WithTile(empty[idx], value)
}

// IsTerminal reports whether no move can change the board: every cell is
// occupied and no two adjacent cells are equal.
func IsTerminal(b Board) bool {
	n := b.size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.At(r, c)
			if v == 0 {
				return false
			}
			if c+1 < n && b.At(r, c+1) == v {
				return false
			}
			if r+1 < n && b.At(r+1, c) == v {
				return false
			}
		}
	}
	return true
}

// HasReachedTarget reports whether any cell holds a value >= target.
func HasReachedTarget(b Board, target int) bool {
	for _, v := range b.cells {
		if v >= target {
			return true
		}
	}
	return false
}

// Validate audits every cell and returns a description of each violation.
// Findings are reported, never thrown; a tampered board still plays.
func Validate(b Board) []string {
	var findings []string
	for i, v := range b.cells {
		r, c := i/b.size, i%b.size
		switch {
		case v < 0:
			findings = append(findings, fmt.Sprintf("cell (%d,%d) holds negative value %d", r, c, v))
		case v != 0 && !isPowerOfTwo(v):
			findings = append(findings, fmt.Sprintf("cell (%d,%d) holds non-power-of-two value %d", r, c, v))
		}
	}
	return findings
}

func isPowerOfTwo(v int) bool {
	return v > 1 && v&(v-1) == 0
}
