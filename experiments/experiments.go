// Package experiments benchmarks the search policies against each other by
// playing batches of seeded games and collecting their records.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twenty48/agent"
	"twenty48/engine"
)

// Candidate names one search configuration under comparison.
type Candidate struct {
	Name   string
	Search agent.SearchConfig
}

// DefaultCandidates compares the three policies at their default tunings.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "expectimax", Search: agent.DefaultSearchConfig()},
		{Name: "rollout", Search: agent.SearchConfig{Policy: agent.RolloutSearch, RolloutCount: 200, RolloutMaxSteps: 40}},
		{Name: "greedy", Search: agent.SearchConfig{Policy: agent.GreedySearch}},
	}
}

// Summary aggregates one candidate's batch.
type Summary struct {
	Name      string
	Games     int
	Wins      int
	MeanScore float64
	BestScore int
	BestTile  int
	Duration  time.Duration
}

// RunComparison plays `games` seeded games per candidate. Every candidate
// replays the same seed sequence, derived deterministically from baseSeed, so
// the comparison is fair.
func RunComparison(candidates []Candidate, games int, baseSeed uint64, size, target int) ([]engine.GameRecord, []Summary) {
	seeds := make([]uint64, games)
	stream := rand.New(rand.NewSource(baseSeed))
	for i := range seeds {
		seeds[i] = stream.Uint64()
	}

	var records []engine.GameRecord
	summaries := make([]Summary, 0, len(candidates))

	for _, candidate := range candidates {
		log.Info().Str("candidate", candidate.Name).Int("games", games).Msg("running batch")
		start := time.Now()
		summary := Summary{Name: candidate.Name, Games: games}

		for i, seed := range seeds {
			a := agent.New(
				agent.WithSeed(seed),
				agent.WithSearchConfig(candidate.Search),
			)
			e := engine.New(a, size, seed, engine.WithTarget(target))

			record, err := e.Run()
			if err != nil {
				log.Error().Err(err).Str("candidate", candidate.Name).Int("game", i).Msg("game failed")
				continue
			}

			records = append(records, record)
			summary.MeanScore += float64(record.Score)
			if record.Won {
				summary.Wins++
			}
			if record.Score > summary.BestScore {
				summary.BestScore = record.Score
			}
			if record.MaxTile > summary.BestTile {
				summary.BestTile = record.MaxTile
			}
		}

		if games > 0 {
			summary.MeanScore /= float64(games)
		}
		summary.Duration = time.Since(start)
		summaries = append(summaries, summary)

		log.Info().
			Str("candidate", candidate.Name).
			Int("wins", summary.Wins).
			Float64("mean_score", summary.MeanScore).
			Int("best_tile", summary.BestTile).
			Dur("duration", summary.Duration).
			Msg("batch complete")
	}

	return records, summaries
}
