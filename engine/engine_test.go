package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"twenty48/agent"
)

func greedyAgent(seed uint64) *agent.Agent {
	return agent.New(
		agent.WithSeed(seed),
		agent.WithSearchConfig(agent.SearchConfig{Policy: agent.GreedySearch}),
	)
}

func TestRunPlaysToCompletion(t *testing.T) {
	e := New(greedyAgent(7), 4, 7)

	record, err := e.Run()

	require.NoError(t, err)
	require.Greater(t, record.Moves, 0)
	require.GreaterOrEqual(t, record.Score, 0)
	require.GreaterOrEqual(t, record.MaxTile, 8, "a full greedy game merges well past the spawn values")
	require.Equal(t, "greedy", record.Policy)
	require.EqualValues(t, 7, record.Seed)
}

func TestRunIsReproducibleForEqualSeeds(t *testing.T) {
	first, err := New(greedyAgent(42), 4, 42).Run()
	require.NoError(t, err)

	second, err := New(greedyAgent(42), 4, 42).Run()
	require.NoError(t, err)

	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Moves, second.Moves)
	require.Equal(t, first.MaxTile, second.MaxTile)
	require.Equal(t, first.Won, second.Won)
}

func TestRunHonorsMoveCap(t *testing.T) {
	e := New(greedyAgent(1), 4, 1, WithMaxMoves(5))

	record, err := e.Run()

	require.NoError(t, err)
	require.LessOrEqual(t, record.Moves, 5)
}

func TestRunDetectsWin(t *testing.T) {
	// With a tiny target the very first spawned tiles already win.
	e := New(greedyAgent(3), 4, 3, WithTarget(2))

	record, err := e.Run()

	require.NoError(t, err)
	require.True(t, record.Won)
	require.Equal(t, 0, record.Moves)
}
