package world

import "strings"

// Position is a grid-local coordinate. Y grows upward from the bottom row.
type Position struct {
	X, Y int
}

// Grid is a fixed-size 2D tile array, mutated in place by each generation
// phase.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]TileState // indexed [y][x]
}

// NewGrid creates a grid with every cell set to TileEmpty.
func NewGrid(width, height int) *Grid {
	tiles := make([][]TileState, height)
	for y := range tiles {
		tiles[y] = make([]TileState, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position. Out-of-bounds cells read as
// TileEmpty.
func (g *Grid) At(x, y int) TileState {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.Tiles[y][x]
}

// Set overwrites the tile at the given position. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(x, y int, t TileState) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = t
	}
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.At(x, y).IsPassable()
}

// fillEmpty sets every Empty cell of the rectangle anchored at (x, y) to t.
// Cells already carved are left alone, so repeated fills are idempotent.
func (g *Grid) fillEmpty(x, y, width, height int, t TileState) {
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			if g.At(i, j) == TileEmpty {
				g.Set(i, j, t)
			}
		}
	}
}

// carvedNeighbors counts Floor or Hallway tiles in the 3x3 window around
// (x, y), clamped to the grid edges. It stops counting once limit is reached.
func (g *Grid) carvedNeighbors(x, y, limit int) int {
	count := 0
	for j := max(0, y-1); j <= min(y+1, g.Height-1); j++ {
		for i := max(0, x-1); i <= min(x+1, g.Width-1); i++ {
			if t := g.Tiles[j][i]; t == TileFloor || t == TileHallway {
				count++
				if count == limit {
					return count
				}
			}
		}
	}
	return count
}

// Count returns the number of tiles in the given state.
func (g *Grid) Count(t TileState) int {
	n := 0
	for y := range g.Tiles {
		for _, tile := range g.Tiles[y] {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	for y := range g.Tiles {
		copy(c.Tiles[y], g.Tiles[y])
	}
	return c
}

// Equal reports whether two grids have the same size and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as plain text, top row first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.Tiles[y][x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
