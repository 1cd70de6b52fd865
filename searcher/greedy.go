package searcher

import (
	"twenty48/game"
)

// Greedy looks exactly one ply ahead: each direction is scored as the merge
// score it gains plus the heuristic value of the resulting board. No
// recursion, no randomness.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (p *Greedy) Name() string {
	return "greedy"
}

func (p *Greedy) ChooseBestMove(board game.Board, cfg Config) DecisionResult {
	per := sentinelScores()
	legal := make(map[game.Direction]float64)

	for _, dir := range game.MoveOrder {
		res, err := game.ApplyMove(board, dir)
		if err != nil || !res.Moved {
			continue
		}
		value := float64(res.Score) + game.Evaluate(res.Board, cfg.Weights)
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
