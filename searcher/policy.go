package searcher

import (
	"math"
	"time"

	"twenty48/game"
)

// Illegal is the per-direction sentinel reported for directions that cannot
// change the board.
var Illegal = math.Inf(-1)

// lostPenalty is the value of a maximizing level with no legal moves: an
// imminent loss, well below any reachable heuristic score.
const lostPenalty = -1e9

// Config carries everything a policy needs for one decision. Policies never
// mutate it.
type Config struct {
	BaseDepth       int
	AdaptiveDepth   bool
	RolloutCount    int
	RolloutMaxSteps int
	Prob4           float64
	Weights         game.Weights
	Rand            game.RandomSource
}

// DecisionResult is built fresh per decision and never mutated after return.
type DecisionResult struct {
	Chosen       game.Direction
	HasMove      bool
	PerDirection map[game.Direction]float64
	Confidence   float64
	Elapsed      time.Duration
}

// ChosenLabel renders the chosen direction, or "none" when every direction is
// illegal.
func (r DecisionResult) ChosenLabel() string {
	if !r.HasMove {
		return "none"
	}
	return r.Chosen.String()
}

// Policy picks a direction for a board. Implementations are stateless; all
// per-decision state lives on the stack so a policy value can be reused
// across sessions.
type Policy interface {
	Name() string
	ChooseBestMove(board game.Board, cfg Config) DecisionResult
}

// bestDirection returns the highest-scoring legal direction, breaking ties by
// enumeration order (Up, Right, Down, Left).
func bestDirection(legal map[game.Direction]float64) (game.Direction, bool) {
	best := math.Inf(-1)
	var bestDir game.Direction
	found := false
	for _, dir := range game.MoveOrder {
		score, ok := legal[dir]
		if !ok {
			continue
		}
		if !found || score > best {
			best = score
			bestDir = dir
			found = true
		}
	}
	return bestDir, found
}

// gapConfidence summarizes how much better the best legal score is than the
// runner-up, normalized to [0, 1]. A single legal direction is fully
// confident.
func gapConfidence(legal map[game.Direction]float64) float64 {
	if len(legal) == 0 {
		return 0
	}
	if len(legal) == 1 {
		return 1
	}

	best, second := math.Inf(-1), math.Inf(-1)
	for _, score := range legal {
		if score > best {
			second = best
			best = score
		} else if score > second {
			second = score
		}
	}

	denom := math.Abs(best) + math.Abs(second)
	if denom == 0 {
		return 0
	}
	return clamp01((best - second) / denom)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sentinelScores returns a per-direction map with every direction marked
// illegal; policies overwrite the legal entries.
func sentinelScores() map[game.Direction]float64 {
	per := make(map[game.Direction]float64, len(game.MoveOrder))
	for _, dir := range game.MoveOrder {
		per[dir] = Illegal
	}
	return per
}
