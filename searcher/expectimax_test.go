package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"twenty48/game"
)

func testConfig() Config {
	return Config{
		BaseDepth: 2,
		Prob4:     0.1,
		Weights:   game.DefaultWeights(),
	}
}

func boardOf(t *testing.T, cells []int) game.Board {
	t.Helper()
	b, err := game.FromCells(4, cells)
	require.NoError(t, err)
	return b
}

func TestExpectimaxReturnsNoneOnTerminalBoard(t *testing.T) {
	b := boardOf(t, []int{
		2, 4, 8, 16,
		4, 8, 16, 2,
		2, 4, 2, 4,
		4, 2, 4, 2,
	})
	require.True(t, game.IsTerminal(b))

	result := NewExpectimax().ChooseBestMove(b, testConfig())

	require.False(t, result.HasMove)
	require.Equal(t, "none", result.ChosenLabel())
	require.Equal(t, 0.0, result.Confidence)
	for _, dir := range game.MoveOrder {
		require.Equal(t, Illegal, result.PerDirection[dir])
	}
}

func TestExpectimaxChoosesLegalDirection(t *testing.T) {
	b := boardOf(t, []int{
		2, 2, 4, 8,
		0, 0, 2, 4,
		0, 0, 0, 2,
		0, 0, 0, 0,
	})

	result := NewExpectimax().ChooseBestMove(b, testConfig())

	require.True(t, result.HasMove)
	res, err := game.ApplyMove(b, result.Chosen)
	require.NoError(t, err)
	require.True(t, res.Moved, "chosen direction must actually change the board")
	require.Len(t, result.PerDirection, 4, "all four directions must be reported")
}

func TestExpectimaxIsDeterministic(t *testing.T) {
	b := boardOf(t, []int{
		4, 2, 0, 0,
		8, 4, 2, 0,
		16, 8, 4, 2,
		32, 16, 8, 4,
	})
	cfg := testConfig()
	policy := NewExpectimax()

	first := policy.ChooseBestMove(b, cfg)
	second := policy.ChooseBestMove(b, cfg)

	require.Equal(t, first.Chosen, second.Chosen)
	require.Equal(t, first.PerDirection, second.PerDirection)
	require.Equal(t, first.Confidence, second.Confidence)
}

func TestExpectimaxReportsIllegalDirections(t *testing.T) {
	// Everything packed into the top-left corner: Up and Left cannot move.
	b := boardOf(t, []int{
		2, 4, 0, 0,
		8, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	result := NewExpectimax().ChooseBestMove(b, testConfig())

	require.Equal(t, Illegal, result.PerDirection[game.Up])
	require.Equal(t, Illegal, result.PerDirection[game.Left])
	require.NotEqual(t, Illegal, result.PerDirection[game.Right])
	require.NotEqual(t, Illegal, result.PerDirection[game.Down])
}

func TestAdaptiveDepth(t *testing.T) {
	open := boardOf(t, func() []int {
		cells := make([]int, 16)
		cells[0] = 2
		cells[1] = 2
		return cells
	}())
	tight := boardOf(t, []int{
		2, 4, 8, 16,
		4, 8, 16, 32,
		2, 4, 8, 16,
		4, 8, 0, 0,
	})
	packed := boardOf(t, []int{
		2, 4, 8, 16,
		4, 8, 16, 32,
		2, 4, 8, 16,
		4, 8, 16, 0,
	})

	base := 3
	require.Equal(t, base, adaptiveDepth(open, base), "an open board keeps the base depth")
	require.GreaterOrEqual(t, adaptiveDepth(tight, base), base, "fewer empty cells never reduce depth")
	require.Greater(t, adaptiveDepth(packed, base), adaptiveDepth(open, base))
	require.GreaterOrEqual(t, adaptiveDepth(packed, base), adaptiveDepth(tight, base))
}

func TestAdaptiveDepthHighTile(t *testing.T) {
	cells := make([]int, 16)
	cells[0] = 2048
	b := boardOf(t, cells)

	require.Greater(t, adaptiveDepth(b, 3), 3, "a large max tile justifies deeper search")
}

func TestExpectimaxFindsTheOnlyMerge(t *testing.T) {
	// One pair away from terminal: only the vertical merge in column 0 keeps
	// the game alive, so the chosen direction must run along that column.
	b := boardOf(t, []int{
		2, 4, 8, 16,
		2, 8, 16, 32,
		4, 16, 32, 64,
		8, 32, 64, 128,
	})

	result := NewExpectimax().ChooseBestMove(b, testConfig())

	require.True(t, result.HasMove)
	require.Contains(t, []game.Direction{game.Up, game.Down}, result.Chosen)
	require.Equal(t, Illegal, result.PerDirection[game.Left])
	require.Equal(t, Illegal, result.PerDirection[game.Right])
}
