package game

import "math"

// Weights configures the linear combination of the four heuristic sub-scores.
// All weights are expected to be non-negative; the evaluator is agnostic to
// their meaning beyond the weighted sum.
type Weights struct {
	Position     float64
	Monotonicity float64
	Smoothness   float64
	Empty        float64
}

// DefaultWeights returns a tuning that favors keeping the big tiles anchored
// in a corner while preserving open space.
func DefaultWeights() Weights {
	return Weights{
		Position:     1.0,
		Monotonicity: 10.0,
		Smoothness:   3.0,
		Empty:        27.0,
	}
}

// Evaluate scores a board as the weighted sum of positional, monotonicity,
// smoothness and empty-cell sub-scores. Pure: never mutates the board, never
// draws randomness.
func Evaluate(b Board, w Weights) float64 {
	return w.Position*positionScore(b) +
		w.Monotonicity*monotonicityScore(b) +
		w.Smoothness*smoothnessScore(b) +
		w.Empty*float64(len(b.EmptyCells()))
}

// positionScore multiplies each cell value by a serpentine rank matrix whose
// highest weight sits in the top-left corner, decreasing along a snake path.
func positionScore(b Board) float64 {
	n := b.size
	total := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.At(r, c)
			if v == 0 {
				continue
			}
			total += float64(v) * float64(serpentineRank(n, r, c))
		}
	}
	return total
}

// serpentineRank walks row 0 left to right, row 1 right to left, and so on;
// the first cell on the path gets rank n*n-1, the last gets 0.
func serpentineRank(n, r, c int) int {
	var step int
	if r%2 == 0 {
		step = r*n + c
	} else {
		step = r*n + (n - 1 - c)
	}
	return n*n - 1 - step
}

// monotonicityScore measures how consistently each axis increases or
// decreases in log2 space. Every adjacent pair penalizes exactly one of the
// two directions per axis; the less-violated direction wins per axis.
func monotonicityScore(b Board) float64 {
	n := b.size
	var rowAsc, rowDesc, colAsc, colDesc float64

	for r := 0; r < n; r++ {
		for c := 0; c+1 < n; c++ {
			cur := tileLog2(b.At(r, c))
			next := tileLog2(b.At(r, c+1))
			if cur > next {
				rowAsc += next - cur
			} else {
				rowDesc += cur - next
			}
		}
	}
	for c := 0; c < n; c++ {
		for r := 0; r+1 < n; r++ {
			cur := tileLog2(b.At(r, c))
			next := tileLog2(b.At(r+1, c))
			if cur > next {
				colAsc += next - cur
			} else {
				colDesc += cur - next
			}
		}
	}

	return math.Max(rowAsc, rowDesc) + math.Max(colAsc, colDesc)
}

// smoothnessScore penalizes the log2 gap between every non-empty cell and its
// nearest non-empty neighbor to the right and below.
func smoothnessScore(b Board) float64 {
	n := b.size
	total := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.At(r, c)
			if v == 0 {
				continue
			}
			lv := tileLog2(v)
			for nc := c + 1; nc < n; nc++ {
				if nb := b.At(r, nc); nb != 0 {
					total -= math.Abs(lv - tileLog2(nb))
					break
				}
			}
			for nr := r + 1; nr < n; nr++ {
				if nb := b.At(nr, c); nb != 0 {
					total -= math.Abs(lv - tileLog2(nb))
					break
				}
			}
		}
	}
	return total
}

func tileLog2(v int) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(float64(v))
}
