package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"twenty48/game"
)

func TestBestDirectionTieBreak(t *testing.T) {
	t.Run("ties break by enumeration order", func(t *testing.T) {
		legal := map[game.Direction]float64{
			game.Left: 5,
			game.Up:   5,
		}

		dir, found := bestDirection(legal)

		require.True(t, found)
		require.Equal(t, game.Up, dir, "Up precedes Left in enumeration order")
	})

	t.Run("higher score wins regardless of order", func(t *testing.T) {
		legal := map[game.Direction]float64{
			game.Right: 3,
			game.Down:  7,
		}

		dir, found := bestDirection(legal)

		require.True(t, found)
		require.Equal(t, game.Down, dir)
	})

	t.Run("no legal direction", func(t *testing.T) {
		_, found := bestDirection(nil)
		require.False(t, found)
	})
}

func TestGapConfidence(t *testing.T) {
	require.Equal(t, 0.0, gapConfidence(nil), "no legal direction means zero confidence")
	require.Equal(t, 1.0, gapConfidence(map[game.Direction]float64{game.Up: 3}),
		"a single legal direction is fully confident")
	require.Equal(t, 0.0, gapConfidence(map[game.Direction]float64{game.Up: 4, game.Down: 4}),
		"a dead heat carries no confidence")

	clear := gapConfidence(map[game.Direction]float64{game.Up: 10, game.Down: 1})
	close := gapConfidence(map[game.Direction]float64{game.Up: 10, game.Down: 9})
	require.Greater(t, clear, close)
	require.GreaterOrEqual(t, clear, 0.0)
	require.LessOrEqual(t, clear, 1.0)
}

func TestShareConfidence(t *testing.T) {
	require.Equal(t, 0.0, shareConfidence(0, 0))
	require.Equal(t, 0.0, shareConfidence(50, 200), "an even split maps to zero")
	require.Equal(t, 1.0, shareConfidence(200, 200), "a monopoly maps to one")
	require.Greater(t, shareConfidence(150, 200), shareConfidence(100, 200))
}

func TestSentinelScores(t *testing.T) {
	per := sentinelScores()
	require.Len(t, per, 4)
	for _, dir := range game.MoveOrder {
		require.Equal(t, Illegal, per[dir])
	}
}
