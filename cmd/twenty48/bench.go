package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"twenty48/experiments"
	"twenty48/storage"
)

var (
	flagBenchGames int
	flagBenchSave  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the search policies over seeded batches",
	Long: `Play the same seeded games with each policy and report score, win
rate and best tile per policy. Every policy replays an identical seed
sequence so the comparison is fair.

Examples:
  twenty48 bench
  twenty48 bench --games 20 --seed 7
  twenty48 bench --save`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 10, "Games per policy")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Save every game record to the database")
}

func runBench(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	records, summaries := experiments.RunComparison(
		experiments.DefaultCandidates(), flagBenchGames, cfg.Seed, cfg.BoardSize, cfg.Target)

	fmt.Printf("  %-12s  %-6s  %-5s  %-11s  %-10s  %s\n",
		"Policy", "Games", "Wins", "Mean score", "Best tile", "Duration")
	fmt.Printf("  %-12s  %-6s  %-5s  %-11s  %-10s  %s\n",
		"------", "-----", "----", "----------", "---------", "--------")
	for _, summary := range summaries {
		fmt.Printf("  %-12s  %-6d  %-5d  %-11.1f  %-10d  %s\n",
			summary.Name, summary.Games, summary.Wins, summary.MeanScore,
			summary.BestTile, summary.Duration.Round(time.Millisecond))
	}

	if !flagBenchSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn().Err(err).Msg("could not open games database, records not saved")
		return
	}
	defer store.Close()
	for _, record := range records {
		if _, err := store.SaveGame(record); err != nil {
			log.Warn().Err(err).Msg("could not save game record")
			return
		}
	}
	fmt.Printf("saved %d game records\n", len(records))
}
