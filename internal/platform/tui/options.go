package tui

import (
	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/config"
	"github.com/vovakirdan/tileswap/internal/game"
)

// SessionOptions translates a loaded configuration into engine options.
// Both the local runner and the SSH handler build sessions through it.
func SessionOptions(cfg config.Config) game.Options {
	opts := game.Options{
		SplashSeconds: cfg.Game.SplashSeconds,
		TimeLimits:    make(map[int]int),
	}
	for size := board.MinSize; size <= board.MaxSize; size++ {
		opts.TimeLimits[size] = cfg.TimeLimit(size)
	}
	return opts
}
