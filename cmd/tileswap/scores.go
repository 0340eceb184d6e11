package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/scores"
	"github.com/vovakirdan/tileswap/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show best results",
	Long: `Display the ranked best results, fewest moves first.

Without an argument, tables for every board size are shown.

Examples:
  tileswap scores
  tileswap scores 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	sizes := []int{3, 4, 5, 6}
	if len(args) == 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil || !board.ValidSize(size) {
			fmt.Fprintf(os.Stderr, "Error: unsupported board size %q (want 3-6)\n", args[0])
			os.Exit(1)
		}
		sizes = []int{size}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tileswap"})
	ledger := scores.Load(store, logger)

	for _, size := range sizes {
		key := scores.SizeKey(size)
		top := ledger.Top(key)

		fmt.Printf("Best results - %s\n", key)
		fmt.Println()

		if len(top) == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			continue
		}

		// Print header
		fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %s\n", "Rank", "Name", "Moves", "Time left", "Date")
		fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %s\n", "----", "----", "-----", "---------", "----")

		for i, r := range top {
			fmt.Printf("  %-4d  %-12s  %-6d  %-9s  %s\n",
				i+1, r.Name, r.Moves,
				fmt.Sprintf("%ds", r.TimeRemaining),
				r.Date.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
}
