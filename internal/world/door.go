package world

import (
	"fmt"

	"github.com/samdwyer/dungeonseed/internal/random"
)

// doorNeighbors is how many floor or hallway tiles must surround a wall
// before it can hold the door.
const doorNeighbors = 2

// PlaceDoor converts one wall into the locked door. Each attempt picks a
// column near the middle of the grid, walks up from row 1 to the first wall
// in that column, and accepts it if at least two floor or hallway tiles
// surround it. Columns off the grid or without a wall count as failed
// attempts.
func PlaceDoor(grid *Grid, rng *random.Source, maxAttempts int) (pos Position, attempts int, err error) {
	mean := float64(grid.Width / 2)
	stddev := float64(grid.Width / 5)

	for attempts < maxAttempts {
		attempts++

		x := rng.GaussianInt(mean, stddev)
		if x < 0 || x >= grid.Width {
			continue
		}

		y, ok := firstWallAbove(grid, x, 1)
		if !ok {
			continue
		}

		if grid.carvedNeighbors(x, y, doorNeighbors) >= doorNeighbors {
			grid.Tiles[y][x] = TileLockedDoor
			return Position{X: x, Y: y}, attempts, nil
		}
	}

	return Position{}, attempts, fmt.Errorf("%w: door: no qualifying wall after %d attempts",
		ErrCapacityExceeded, attempts)
}

// firstWallAbove scans column x upward from row y and returns the first wall.
func firstWallAbove(grid *Grid, x, y int) (int, bool) {
	for ; y < grid.Height; y++ {
		if grid.Tiles[y][x] == TileWall {
			return y, true
		}
	}
	return 0, false
}
