package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateIsDeterministic(t *testing.T) {
	b := mustBoard(t, 4, []int{
		128, 64, 32, 16,
		2, 4, 8, 0,
		0, 0, 2, 0,
		0, 0, 0, 2,
	})
	w := DefaultWeights()

	require.Equal(t, Evaluate(b, w), Evaluate(b, w))
	require.Equal(t, b.Cells(), b.Cells(), "evaluation must not mutate the board")
}

func TestSerpentineRank(t *testing.T) {
	// Row 0 runs left to right, row 1 right to left.
	require.Equal(t, 15, serpentineRank(4, 0, 0))
	require.Equal(t, 12, serpentineRank(4, 0, 3))
	require.Equal(t, 11, serpentineRank(4, 1, 3))
	require.Equal(t, 8, serpentineRank(4, 1, 0))
	require.Equal(t, 0, serpentineRank(4, 3, 0))
}

func TestPositionScorePrefersCorner(t *testing.T) {
	corner := mustBoard(t, 4, []int{
		1024, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	center := mustBoard(t, 4, []int{
		0, 0, 0, 0,
		0, 1024, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	require.Greater(t, positionScore(corner), positionScore(center),
		"the big tile should score higher in the corner")
}

func TestMonotonicityScore(t *testing.T) {
	t.Run("perfectly ordered board has no penalty", func(t *testing.T) {
		b := mustBoard(t, 4, []int{
			256, 128, 64, 32,
			128, 64, 32, 16,
			64, 32, 16, 8,
			32, 16, 8, 4,
		})
		require.Equal(t, 0.0, monotonicityScore(b))
	})

	t.Run("scrambled board is penalized", func(t *testing.T) {
		b := mustBoard(t, 4, []int{
			2, 256, 4, 128,
			64, 2, 32, 8,
			4, 128, 2, 64,
			32, 4, 16, 2,
		})
		require.Less(t, monotonicityScore(b), 0.0)
	})

	t.Run("each axis rewards its better direction independently", func(t *testing.T) {
		// Rows strictly increase, columns strictly decrease; neither axis
		// should pay a penalty.
		b := mustBoard(t, 4, []int{
			32, 64, 128, 256,
			16, 32, 64, 128,
			8, 16, 32, 64,
			4, 8, 16, 32,
		})
		require.Equal(t, 0.0, monotonicityScore(b))
	})
}

func TestSmoothnessScore(t *testing.T) {
	uniform := mustBoard(t, 4, []int{
		8, 8, 8, 8,
		8, 8, 8, 8,
		8, 8, 8, 8,
		8, 8, 8, 8,
	})
	jagged := mustBoard(t, 4, []int{
		2, 512, 2, 512,
		512, 2, 512, 2,
		2, 512, 2, 512,
		512, 2, 512, 2,
	})

	require.Equal(t, 0.0, smoothnessScore(uniform), "equal neighbors carry no penalty")
	require.Less(t, smoothnessScore(jagged), smoothnessScore(uniform))
}

func TestSmoothnessSkipsGaps(t *testing.T) {
	// The nearest non-empty neighbor across a gap is the one compared.
	b := mustBoard(t, 4, []int{
		8, 0, 0, 8,
		0, 0, 0, 0,
		0, 0, 0, 0,
		8, 0, 0, 8,
	})
	require.Equal(t, 0.0, smoothnessScore(b))
}

func TestEmptyCellWeightRewardsOpenness(t *testing.T) {
	w := Weights{Empty: 1.0}
	open := mustBoard(t, 4, func() []int {
		cells := make([]int, 16)
		cells[0] = 2
		return cells
	}())
	crowded := mustBoard(t, 4, []int{
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 4,
		0, 0, 0, 0,
	})

	require.Greater(t, Evaluate(open, w), Evaluate(crowded, w))
}
