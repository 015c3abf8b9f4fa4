package world

import (
	"fmt"

	"github.com/samdwyer/dungeonseed/internal/random"
)

// PlaceSpawns converts count random room floor tiles into player spawns.
// Each spawn gets its own budget of maxAttempts samples.
func PlaceSpawns(grid *Grid, rng *random.Source, count, maxAttempts int) ([]Position, error) {
	spawns := make([]Position, 0, count)

	for len(spawns) < count {
		pos, ok := findFloor(grid, rng, maxAttempts)
		if !ok {
			return spawns, fmt.Errorf("%w: spawn: no floor for spawn %d after %d attempts",
				ErrCapacityExceeded, len(spawns)+1, maxAttempts)
		}
		grid.Tiles[pos.Y][pos.X] = TilePlayerSpawn
		spawns = append(spawns, pos)
	}

	return spawns, nil
}

func findFloor(grid *Grid, rng *random.Source, maxAttempts int) (Position, bool) {
	for i := 0; i < maxAttempts; i++ {
		x := rng.Uniform(roomMargin, grid.Width-roomMargin)
		y := rng.Uniform(roomMargin, grid.Height-roomMargin)
		if grid.Tiles[y][x] == TileFloor {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}
