// Package board builds and inspects the tile grids for a puzzle session.
// A grid is a square arrangement of numbered, colored tiles; the player's
// goal is the target grid, where numbers ascend row by row.
package board

import "math/rand"

// Supported grid sizes (board dimension N for an N×N grid).
const (
	MinSize = 3
	MaxSize = 6
)

// Tile is a single numbered cell. Tiles are immutable once created;
// only their position in the grid changes.
type Tile struct {
	Number int    // 1..size²
	Color  string // hex color, e.g. "#4fa3d1"
}

// Cell is a row/column coordinate into a grid.
type Cell struct {
	Row, Col int
}

// Grid is a size×size arrangement of tiles. It always contains exactly
// one tile per number in [1, size²].
type Grid [][]Tile

// Size returns the board dimension N.
func (g Grid) Size() int {
	return len(g)
}

// Solved reports whether the grid is in target order: scanning row-major,
// the Nth tile has number N.
func (g Grid) Solved() bool {
	size := len(g)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if g[i][j].Number != i*size+j+1 {
				return false
			}
		}
	}
	return true
}

// Swap exchanges the tiles at a and b in place.
func (g Grid) Swap(a, b Cell) {
	g[a.Row][a.Col], g[b.Row][b.Col] = g[b.Row][b.Col], g[a.Row][a.Col]
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Tile(nil), row...)
	}
	return out
}

// ValidSize reports whether size is a supported board dimension.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// Adjacent reports whether two cells are orthogonal neighbors: exactly one
// of row/col differs by 1 while the other is equal. Diagonals don't count.
func Adjacent(a, b Cell) bool {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// New builds the target grid and a shuffled initial grid for the given
// size. The target places numbers 1..size² row-major with one palette
// color per number. The initial grid is a uniform permutation of the same
// numbers; each tile keeps the color bound to its number in the target,
// so colors travel with numbers, not with positions.
func New(size int, rng *rand.Rand) (target, initial Grid) {
	count := size * size
	palette := Palette(count, rng)

	target = make(Grid, size)
	for i := 0; i < size; i++ {
		target[i] = make([]Tile, size)
		for j := 0; j < size; j++ {
			n := i*size + j + 1
			target[i][j] = Tile{Number: n, Color: palette[n-1]}
		}
	}

	numbers := make([]int, count)
	for i := range numbers {
		numbers[i] = i + 1
	}
	rng.Shuffle(count, func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	initial = make(Grid, size)
	for i := 0; i < size; i++ {
		initial[i] = make([]Tile, size)
		for j := 0; j < size; j++ {
			n := numbers[i*size+j]
			initial[i][j] = Tile{Number: n, Color: palette[n-1]}
		}
	}

	return target, initial
}
