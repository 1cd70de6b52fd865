package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twenty48/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded games",
	Long: `Display the highest-scoring recorded games, best first.

Examples:
  twenty48 scores
  twenty48 scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening games database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	games, err := store.TopGames(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'twenty48 play' to record the first game.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-12s  %-4s  %s\n",
		"Rank", "Score", "Max tile", "Moves", "Policy", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-12s  %-4s  %s\n",
		"----", "-----", "--------", "-----", "------", "---", "----")
	for i, row := range games {
		won := ""
		if row.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-9d  %-6d  %-12s  %-4s  %s\n",
			i+1, row.Score, row.MaxTile, row.Moves, row.Policy, won,
			row.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
