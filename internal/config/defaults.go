package config

import (
	_ "embed"
)

//go:embed defaults/tileswap.yaml
var defaultYAML []byte

// Default returns the stock configuration: 30/60/90/120 second limits
// for 3×3 through 6×6 boards and a two-second splash.
func Default() Config {
	return Config{
		Game: GameConfig{
			TimeLimits: map[int]int{
				3: 30,
				4: 60,
				5: 90,
				6: 120,
			},
			SplashSeconds: 2,
		},
		Database: "~/.tileswap/tileswap.db",
	}
}
