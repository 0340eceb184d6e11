// tileswap is a terminal tile-swap puzzle: arrange numbered, colored
// tiles into ascending order by swapping neighbors before the clock
// runs out, competing against your own best move counts per board size.
//
// Usage:
//
//	tileswap play              - Play in the local terminal
//	tileswap scores [size]     - Show best results per board size
//	tileswap reset-scores      - Clear all recorded best results
//	tileswap serve             - Host the puzzle over SSH
//
// Global flags:
//
//	--db <path>      - Database path (default: ~/.tileswap/tileswap.db)
//	--config <path>  - Custom config YAML
//	--seed <value>   - RNG seed for reproducible boards
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileswap",
	Short: "Tileswap - a timed tile-swap puzzle for your terminal",
	Long: `Tileswap puts a shuffled board of numbered, colored tiles in your
terminal. Swap orthogonal neighbors to restore ascending order before
the countdown ends; the fewer moves, the higher you rank.

Available commands:
  play          - Play in the local terminal
  scores        - View best results per board size
  reset-scores  - Clear all recorded best results
  serve         - Host the puzzle over SSH

Examples:
  tileswap play
  tileswap play --size 5 --name Ava
  tileswap scores 4
  tileswap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tileswap/tileswap.db", "Path to scores/settings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetScoresCmd)
	rootCmd.AddCommand(serveCmd)
}
