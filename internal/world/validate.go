package world

import "fmt"

// Validate checks a finished layout against the structural invariants every
// generated dungeon must hold: no overlapping rooms, walls closing off every
// carved tile, exactly one door, and one spawn tile per recorded spawn on a
// room floor.
func Validate(r *Result) error {
	grid := r.Grid
	if grid == nil || grid.Width != r.Width || grid.Height != r.Height {
		return fmt.Errorf("%w: grid does not match %dx%d", ErrInvalidLayout, r.Width, r.Height)
	}

	for i := range r.Rooms {
		for j := i + 1; j < len(r.Rooms); j++ {
			if r.Rooms[i].Overlaps(r.Rooms[j]) {
				return fmt.Errorf("%w: rooms %d and %d overlap",
					ErrInvalidLayout, r.Rooms[i].ID, r.Rooms[j].ID)
			}
		}
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Tiles[y][x].IsCarved() && touchesEmpty(grid, x, y) {
				return fmt.Errorf("%w: carved tile (%d,%d) touches empty space", ErrInvalidLayout, x, y)
			}
		}
	}

	if n := grid.Count(TileLockedDoor); n != 1 {
		return fmt.Errorf("%w: found %d locked doors", ErrInvalidLayout, n)
	}
	if grid.At(r.Door.X, r.Door.Y) != TileLockedDoor {
		return fmt.Errorf("%w: door (%d,%d) is %s", ErrInvalidLayout, r.Door.X, r.Door.Y,
			grid.At(r.Door.X, r.Door.Y))
	}
	if n := openNeighbors(grid, r.Door.X, r.Door.Y); n < doorNeighbors {
		return fmt.Errorf("%w: door (%d,%d) has %d open neighbors", ErrInvalidLayout, r.Door.X, r.Door.Y, n)
	}

	if n := grid.Count(TilePlayerSpawn); n != len(r.Spawns) {
		return fmt.Errorf("%w: found %d spawn tiles for %d spawns", ErrInvalidLayout, n, len(r.Spawns))
	}
	for _, s := range r.Spawns {
		if grid.At(s.X, s.Y) != TilePlayerSpawn {
			return fmt.Errorf("%w: spawn (%d,%d) is %s", ErrInvalidLayout, s.X, s.Y, grid.At(s.X, s.Y))
		}
		if !insideAnyRoom(r.Rooms, s) {
			return fmt.Errorf("%w: spawn (%d,%d) is not on a room floor", ErrInvalidLayout, s.X, s.Y)
		}
	}

	return nil
}

// Connected reports whether every open tile is reachable from every other
// through orthogonal steps.
func Connected(grid *Grid) bool {
	total := 0
	start := Position{X: -1, Y: -1}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Tiles[y][x].IsCarved() {
				if total == 0 {
					start = Position{X: x, Y: y}
				}
				total++
			}
		}
	}
	if total == 0 {
		return true
	}

	seen := make(map[Position]bool, total)
	seen[start] = true
	queue := []Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := Position{X: p.X + d.X, Y: p.Y + d.Y}
			if !seen[n] && grid.At(n.X, n.Y).IsCarved() {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == total
}

func touchesEmpty(grid *Grid, x, y int) bool {
	for j := max(0, y-1); j <= min(y+1, grid.Height-1); j++ {
		for i := max(0, x-1); i <= min(x+1, grid.Width-1); i++ {
			if grid.Tiles[j][i] == TileEmpty {
				return true
			}
		}
	}
	return false
}

// openNeighbors counts carved tiles around (x, y), spawns included, since a
// spawn may have replaced a floor next to the door.
func openNeighbors(grid *Grid, x, y int) int {
	n := 0
	for j := max(0, y-1); j <= min(y+1, grid.Height-1); j++ {
		for i := max(0, x-1); i <= min(x+1, grid.Width-1); i++ {
			if grid.Tiles[j][i].IsCarved() {
				n++
			}
		}
	}
	return n
}

func insideAnyRoom(rooms []Room, p Position) bool {
	for _, r := range rooms {
		if r.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}
