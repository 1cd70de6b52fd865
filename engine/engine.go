// Package engine drives full games: it asks the agent for a move, applies it,
// spawns a tile, and repeats until the board is terminal, the target tile is
// reached, or the move cap hits.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"twenty48/agent"
	"twenty48/game"
)

// MaxMoves caps a run so a misbehaving policy cannot loop forever.
const MaxMoves = 10000

const defaultTarget = 2048

// GameRecord summarizes one finished game.
type GameRecord struct {
	Policy   string
	Seed     uint64
	Score    int
	MaxTile  int
	Moves    int
	Won      bool
	Duration time.Duration
}

type Engine struct {
	agent    *agent.Agent
	size     int
	seed     uint64
	target   int
	maxMoves int
}

type Option func(*Engine)

func WithTarget(target int) Option {
	return func(e *Engine) {
		if target > 0 {
			e.target = target
		}
	}
}

func WithMaxMoves(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// New returns an engine playing boards of the given size with the given
// agent. The seed is recorded for the game record only; seeding the agent is
// the caller's concern.
func New(a *agent.Agent, size int, seed uint64, options ...Option) *Engine {
	e := &Engine{
		agent:    a,
		size:     size,
		seed:     seed,
		target:   defaultTarget,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one game to completion and returns its record.
func (e *Engine) Run() (GameRecord, error) {
	board, err := game.NewBoard(e.size)
	if err != nil {
		return GameRecord{}, fmt.Errorf("engine: %w", err)
	}

	board = game.SpawnTile(board, e.agent.Rand(), e.agent.Prob4())
	board = game.SpawnTile(board, e.agent.Rand(), e.agent.Prob4())

	start := time.Now()
	score := 0
	moves := 0
	won := false

	for moves < e.maxMoves {
		if game.HasReachedTarget(board, e.target) {
			won = true
			break
		}
		if game.IsTerminal(board) {
			break
		}

		result, err := e.agent.Decide(board)
		if err != nil {
			return GameRecord{}, fmt.Errorf("engine: %w", err)
		}
		if !result.HasMove {
			break
		}

		res, err := game.ApplyMove(board, result.Chosen)
		if err != nil {
			return GameRecord{}, fmt.Errorf("engine: %w", err)
		}
		score += res.Score
		board = game.SpawnTile(res.Board, e.agent.Rand(), e.agent.Prob4())
		moves++

		log.Debug().
			Int("move", moves).
			Str("direction", result.Chosen.String()).
			Int("gained", res.Score).
			Int("score", score).
			Float64("confidence", result.Confidence).
			Msg("applied move")
	}

	record := GameRecord{
		Policy:   e.agent.SearchConfig().Policy.String(),
		Seed:     e.seed,
		Score:    score,
		MaxTile:  board.MaxTile(),
		Moves:    moves,
		Won:      won,
		Duration: time.Since(start),
	}

	log.Info().
		Str("policy", record.Policy).
		Uint64("seed", record.Seed).
		Int("score", record.Score).
		Int("max_tile", record.MaxTile).
		Int("moves", record.Moves).
		Bool("won", record.Won).
		Dur("duration", record.Duration).
		Msg("game over")

	return record, nil
}
