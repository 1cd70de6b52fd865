// twenty48 is a decision engine for 4x4 tile-merging boards.
//
// Usage:
//
//	twenty48 play             - Autoplay one game with the configured policy
//	twenty48 hint <cells>     - Suggest a move for a given board position
//	twenty48 bench            - Compare the search policies over seeded batches
//	twenty48 scores           - Show the best recorded games
//
// Global flags:
//
//	--config <path>  - Engine config file (default: embedded defaults)
//	--seed <value>   - RNG seed override (0 = use config)
//	--db <path>      - Game records database (default: ~/.twenty48/games.db)
//	--verbose        - Per-move debug logging
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"twenty48/agent"
	"twenty48/config"
	"twenty48/game"
)

var (
	flagConfig  string
	flagSeed    uint64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "Search-based player for 2048-style boards",
	Long: `twenty48 plays tile-merging boards with one of three search policies:
exhaustive expectimax over the chance tree, Monte Carlo rollouts, or a
one-ply greedy heuristic.

Examples:
  twenty48 play
  twenty48 play --policy rollout --seed 7
  twenty48 hint 2,2,4,0,0,0,4,0,0,0,0,0,0,0,0,0
  twenty48 bench --games 20
  twenty48 scores`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Engine config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/games.db", "Path to game records database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Per-move debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves the engine config and applies the --seed override.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// weightsFrom converts the YAML weights, keeping the built-in defaults when
// the config leaves them all unset.
func weightsFrom(cfg config.EngineConfig) game.Weights {
	w := game.Weights{
		Position:     cfg.Weights.Position,
		Monotonicity: cfg.Weights.Monotonicity,
		Smoothness:   cfg.Weights.Smoothness,
		Empty:        cfg.Weights.Empty,
	}
	if w == (game.Weights{}) {
		return game.DefaultWeights()
	}
	return w
}

// searchConfigFrom converts the YAML tuning into the agent's enum form,
// optionally overridden by a --policy flag value.
func searchConfigFrom(cfg config.EngineConfig, policyOverride string) (agent.SearchConfig, error) {
	name := cfg.Search.Policy
	if policyOverride != "" {
		name = policyOverride
	}
	kind, err := agent.ParsePolicy(name)
	if err != nil {
		return agent.SearchConfig{}, err
	}
	return agent.SearchConfig{
		Policy:          kind,
		BaseDepth:       cfg.Search.BaseDepth,
		AdaptiveDepth:   cfg.Search.AdaptiveDepth,
		RolloutCount:    cfg.Search.RolloutCount,
		RolloutMaxSteps: cfg.Search.RolloutMaxSteps,
	}, nil
}
