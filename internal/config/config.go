// Package config provides YAML-based configuration for the puzzle:
// per-size time limits, splash duration and the default database path.
package config

// Config is the full game configuration.
type Config struct {
	Game     GameConfig `yaml:"game"`
	Database string     `yaml:"database"`
}

// GameConfig tunes the session engine.
type GameConfig struct {
	// TimeLimits maps grid size (3-6) to the countdown in seconds.
	TimeLimits map[int]int `yaml:"time_limits"`
	// SplashSeconds is how long the splash screen shows before the menu.
	SplashSeconds int `yaml:"splash_seconds"`
}

// TimeLimit returns the countdown for an N×N grid, falling back to the
// default table for sizes the file doesn't mention.
func (c Config) TimeLimit(size int) int {
	if limit, ok := c.Game.TimeLimits[size]; ok {
		return limit
	}
	return Default().Game.TimeLimits[size]
}
