package searcher

import (
	"twenty48/game"
)

const (
	defaultRolloutCount    = 200
	defaultRolloutMaxSteps = 40

	// rolloutEvalWeight scales the leaf evaluation added to a rollout's
	// accumulated merge score.
	rolloutEvalWeight = 0.1
)

// Rollout estimates each direction's long-run value by Monte Carlo sampling:
// the sample budget is spread round-robin across the four starting
// directions, then each sample plays random legal moves (spawning a tile
// after every successful one) until no move remains or the step bound hits.
type Rollout struct{}

func NewRollout() *Rollout {
	return &Rollout{}
}

func (p *Rollout) Name() string {
	return "rollout"
}

func (p *Rollout) ChooseBestMove(board game.Board, cfg Config) DecisionResult {
	count := cfg.RolloutCount
	if count <= 0 {
		count = defaultRolloutCount
	}
	maxSteps := cfg.RolloutMaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultRolloutMaxSteps
	}

	sums := make(map[game.Direction]float64)
	samples := make(map[game.Direction]int)

	for i := 0; i < count; i++ {
		dir := game.MoveOrder[i%len(game.MoveOrder)]
		res, err := game.ApplyMove(board, dir)
		if err != nil || !res.Moved {
			// A direction that never produces a legal first move
			// contributes no samples.
			continue
		}
		samples[dir]++
		sums[dir] += p.playout(res, cfg, maxSteps)
	}

	per := sentinelScores()
	legal := make(map[game.Direction]float64)
	totalSamples := 0
	for dir, n := range samples {
		avg := sums[dir] / float64(n)
		per[dir] = avg
		legal[dir] = avg
		totalSamples += n
	}

	chosen, found := bestDirection(legal)
	confidence := 0.0
	if found {
		confidence = shareConfidence(samples[chosen], totalSamples)
	}

	return DecisionResult{
		Chosen:       chosen,
		HasMove:      found,
		PerDirection: per,
		Confidence:   confidence,
	}
}

// playout continues a started move with random legal moves and returns the
// cumulative merge score plus a small heuristic contribution from the final
// board.
func (p *Rollout) playout(first game.MoveResult, cfg Config, maxSteps int) float64 {
	total := float64(first.Score)
	board := game.SpawnTile(first.Board, cfg.Rand, cfg.Prob4)

	for step := 0; step < maxSteps; step++ {
		var legal []game.Direction
		var results [4]game.MoveResult
		for _, dir := range game.MoveOrder {
			res, err := game.ApplyMove(board, dir)
			if err != nil || !res.Moved {
				continue
			}
			results[dir] = res
			legal = append(legal, dir)
		}
		if len(legal) == 0 {
			break
		}

		pick := int(cfg.Rand.Next() * float64(len(legal)))
		if pick >= len(legal) {
			pick = len(legal) - 1
		}
		res := results[legal[pick]]
		total += float64(res.Score)
		board = game.SpawnTile(res.Board, cfg.Rand, cfg.Prob4)
	}

	return total + rolloutEvalWeight*game.Evaluate(board, cfg.Weights)
}

// shareConfidence rescales the chosen direction's share of legal samples so
// that an even four-way split maps to 0 and a monopoly maps to 1.
func shareConfidence(chosen, total int) float64 {
	if total == 0 {
		return 0
	}
	share := float64(chosen) / float64(total)
	even := 1.0 / float64(len(game.MoveOrder))
	return clamp01((share - even) / (1 - even))
}
