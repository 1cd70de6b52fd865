package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"twenty48/agent"
	"twenty48/engine"
	"twenty48/storage"
)

var flagPlayPolicy string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Autoplay one game with the configured policy",
	Long: `Play a full game from an empty board to completion and record the
result in the games database.

Examples:
  twenty48 play
  twenty48 play --policy greedy --seed 7
  twenty48 play --policy rollout --verbose`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPolicy, "policy", "", "Search policy override (expectimax, rollout, greedy)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	search, err := searchConfigFrom(cfg, flagPlayPolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := agent.New(
		agent.WithSeed(cfg.Seed),
		agent.WithProb4(cfg.Prob4),
		agent.WithWeights(weightsFrom(cfg)),
		agent.WithSearchConfig(search),
	)
	e := engine.New(a, cfg.BoardSize, cfg.Seed, engine.WithTarget(cfg.Target))

	record, err := e.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error playing game: %v\n", err)
		os.Exit(1)
	}

	outcome := "game over"
	if record.Won {
		outcome = "won"
	}
	fmt.Printf("%s: score %d, max tile %d, %d moves in %s (%s, seed %d)\n",
		outcome, record.Score, record.MaxTile, record.Moves,
		record.Duration.Round(time.Millisecond), record.Policy, record.Seed)

	saveRecord(record)
}

// saveRecord persists a finished game, logging instead of failing when the
// database is unavailable.
func saveRecord(record engine.GameRecord) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn().Err(err).Msg("could not open games database, record not saved")
		return
	}
	defer store.Close()

	if _, err := store.SaveGame(record); err != nil {
		log.Warn().Err(err).Msg("could not save game record")
	}
}
