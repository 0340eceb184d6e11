package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/config"
	"github.com/vovakirdan/tileswap/internal/game"
	"github.com/vovakirdan/tileswap/internal/platform/tui"
	"github.com/vovakirdan/tileswap/internal/scores"
	"github.com/vovakirdan/tileswap/internal/settings"
	"github.com/vovakirdan/tileswap/internal/storage"
)

var (
	flagSize int
	flagName string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle in the local terminal.

Controls:
  Arrows/WASD - Move the cursor
  Enter/Space - Select a tile / swap with the selection
  Esc         - Give up the current game
  Tab         - Change board size (in the menu)
  Ctrl+D      - Toggle dark mode
  Ctrl+S      - Toggle sound
  Ctrl+C      - Quit

Examples:
  tileswap play
  tileswap play --size 5
  tileswap play --name Ava --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size to preselect (3-6)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name to prefill")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagSize != 0 && !board.ValidSize(flagSize) {
		fmt.Fprintf(os.Stderr, "Error: unsupported board size %d (want 3-6)\n", flagSize)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tileswap"})

	// Open persistence; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores won't be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var kv settings.Store
	var scoreStore scores.Store
	if store != nil {
		kv = store
		scoreStore = store
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session := game.NewSession(tui.SessionOptions(cfg), rng, scores.Load(scoreStore, logger))

	if flagSize != 0 {
		session.SetGridSize(flagSize)
	}

	model := tui.NewModel(session, kv, cfg, logger, flagName)

	if err := tui.Run(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
