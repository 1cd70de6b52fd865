package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"twenty48/agent"
	"twenty48/game"
	"twenty48/searcher"
)

var flagHintPolicy string

var hintCmd = &cobra.Command{
	Use:   "hint <cells>",
	Short: "Suggest a move for a given board position",
	Long: `Run one decision on the given position and print the chosen direction
with per-direction scores. Cells are comma-separated row-major values,
0 for empty; the cell count must be a perfect square.

Examples:
  twenty48 hint 2,2,4,0,0,0,4,0,0,0,0,0,0,0,0,0
  twenty48 hint --policy greedy 2,0,2,0,4,4,0,0,8,0,0,0,0,0,0,0`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintPolicy, "policy", "", "Search policy override (expectimax, rollout, greedy)")
}

func runHint(cmd *cobra.Command, args []string) {
	board, err := parseBoard(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if findings := game.Validate(board); len(findings) > 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid board: %s\n", strings.Join(findings, "; "))
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	search, err := searchConfigFrom(cfg, flagHintPolicy)
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

	result, err := a.Decide(board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(board)
	fmt.Printf("best move: %s (confidence %.2f, %s)\n",
		result.ChosenLabel(), result.Confidence, result.Elapsed)
	for _, dir := range game.MoveOrder {
		score, ok := result.PerDirection[dir]
		switch {
		case !ok:
			continue
		case score == searcher.Illegal:
			fmt.Printf("  %-5s illegal\n", dir)
		default:
			fmt.Printf("  %-5s %.2f\n", dir, score)
		}
	}
}

// parseBoard reads a comma-separated row-major cell list into a board.
func parseBoard(arg string) (game.Board, error) {
	fields := strings.Split(arg, ",")
	cells := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return game.Board{}, fmt.Errorf("bad cell %q: %w", field, err)
		}
		cells = append(cells, v)
	}

	size := int(math.Sqrt(float64(len(cells))))
	if size*size != len(cells) {
		return game.Board{}, fmt.Errorf("cell count %d is not a perfect square", len(cells))
	}
	return game.FromCells(size, cells)
}
