package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileswap/internal/scores"
	"github.com/vovakirdan/tileswap/internal/storage"
)

var flagYes bool

var resetScoresCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Clear all recorded best results",
	Long: `Clear the best-results tables for every board size.

Asks for confirmation unless --yes is given.

Examples:
  tileswap reset-scores
  tileswap reset-scores --yes`,
	Args: cobra.NoArgs,
	Run:  runResetScores,
}

func init() {
	resetScoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation prompt")
}

func runResetScores(cmd *cobra.Command, args []string) {
	if !flagYes {
		fmt.Print("This clears every recorded result. Continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tileswap"})
	ledger := scores.Load(store, logger)
	ledger.Reset()

	fmt.Println("High scores cleared.")
}
