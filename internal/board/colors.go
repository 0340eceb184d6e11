package board

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue/saturation/lightness bounds for generated tile colors.
// Hues are spread evenly around the wheel so neighboring numbers stay
// readable; jitter keeps each session's palette from looking identical.
const (
	hueJitter = 15.0 // degrees, applied as ±hueJitter
	satMin    = 0.70
	satMax    = 1.00
	lightMin  = 0.45
	lightMax  = 0.65
)

// Palette produces count hex colors with hues roughly evenly spaced
// around the color wheel (360/count step plus random jitter), then
// returns them in random order. Colors are not guaranteed distinct at
// small counts, only spread.
func Palette(count int, rng *rand.Rand) []string {
	colors := make([]string, count)
	step := 360.0 / float64(count)

	for i := 0; i < count; i++ {
		hue := float64(i)*step + (rng.Float64()*2-1)*hueJitter
		for hue < 0 {
			hue += 360
		}
		for hue >= 360 {
			hue -= 360
		}
		sat := satMin + rng.Float64()*(satMax-satMin)
		light := lightMin + rng.Float64()*(lightMax-lightMin)
		colors[i] = colorful.Hsl(hue, sat, light).Hex()
	}

	rng.Shuffle(count, func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	return colors
}
