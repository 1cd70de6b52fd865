package searcher

import (
	"twenty48/game"
)

// maxExpansions caps the number of simulated moves per decision. Chance nodes
// fan out across every empty cell at every level, so without a ceiling a deep
// search on an open board never terminates in useful time. Past the ceiling
// the tree bottoms out into leaf evaluations.
const maxExpansions = 500000

const defaultBaseDepth = 3

// Expectimax explores an alternating max/chance tree: maximizing levels pick
// the best of the four moves, chance levels average over every possible tile
// spawn weighted by its probability. Fully deterministic; the random source
// is never consulted.
type Expectimax struct{}

func NewExpectimax() *Expectimax {
	return &Expectimax{}
}

func (e *Expectimax) Name() string {
	return "expectimax"
}

func (e *Expectimax) ChooseBestMove(board game.Board, cfg Config) DecisionResult {
	depth := cfg.BaseDepth
	if depth <= 0 {
		depth = defaultBaseDepth
	}
	if cfg.AdaptiveDepth {
		depth = adaptiveDepth(board, depth)
	}

	st := &searchState{}
	per := sentinelScores()
	legal := make(map[game.Direction]float64)

	for _, dir := range game.MoveOrder {
		res, err := game.ApplyMove(board, dir)
		if err != nil || !res.Moved {
			continue
		}
		value := e.chanceValue(res.Board, depth, st, cfg)
		per[dir] = value
		legal[dir] = value
	}

	chosen, found := bestDirection(legal)
	return DecisionResult{
		Chosen:       chosen,
		HasMove:      found,
		PerDirection: per,
		Confidence:   gapConfidence(legal),
	}
}

type searchState struct {
	expansions int
}

// adaptiveDepth deepens the search when the board is nearly full or carries a
// large tile. Monotone: fewer empty cells never decreases the depth.
func adaptiveDepth(board game.Board, base int) int {
	depth := base
	switch empty := len(board.EmptyCells()); {
	case empty <= 2:
		depth += 2
	case empty <= 4:
		depth++
	}
	if board.MaxTile() >= 1024 {
		depth++
	}
	return depth
}

// maxValue is a maximizing level: the best chance value over the four moves,
// or the loss sentinel when nothing moves.
func (e *Expectimax) maxValue(board game.Board, depth int, st *searchState, cfg Config) float64 {
	if depth <= 0 || st.expansions >= maxExpansions {
		return game.Evaluate(board, cfg.Weights)
	}

	best := lostPenalty
	moved := false
	for _, dir := range game.MoveOrder {
		st.expansions++
		res, err := game.ApplyMove(board, dir)
		if err != nil || !res.Moved {
			continue
		}
		moved = true
		if v := e.chanceValue(res.Board, depth, st, cfg); v > best {
			best = v
		}
	}
	if !moved {
		return lostPenalty
	}
	return best
}

// chanceValue is a chance level: the spawn-probability-weighted average over
// a 2 or 4 appearing in each empty cell.
func (e *Expectimax) chanceValue(board game.Board, depth int, st *searchState, cfg Config) float64 {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return e.maxValue(board, depth-1, st, cfg)
	}

	prob4 := cfg.Prob4
	total := 0.0
	for _, idx := range empty {
		total += (1 - prob4) * e.maxValue(board.WithTile(idx, 2), depth-1, st, cfg)
		total += prob4 * e.maxValue(board.WithTile(idx, 4), depth-1, st, cfg)
	}
	return total / float64(len(empty))
}
