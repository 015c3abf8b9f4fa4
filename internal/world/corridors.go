package world

import "github.com/samdwyer/dungeonseed/internal/random"

// ConnectRooms links each room to the next one in order with a hallway
// between a random interior point of each. Only consecutive pairs are
// joined, so the rooms form a single chain.
func ConnectRooms(grid *Grid, rng *random.Source, rooms []Room) {
	for i := 0; i+1 < len(rooms); i++ {
		a := randomInteriorPoint(rng, rooms[i])
		b := randomInteriorPoint(rng, rooms[i+1])
		CarvePath(grid, a, b)
	}
}

func randomInteriorPoint(rng *random.Source, room Room) Position {
	x := room.X + rng.Intn(room.Width)
	y := room.Y + rng.Intn(room.Height)
	return Position{X: x, Y: y}
}

// CarvePath carves hallway tiles between a and b. Points sharing a row or
// column get one straight run; otherwise the path bends at (a.X, b.Y) and is
// carved as a->corner then b->corner. Only empty tiles are changed.
func CarvePath(grid *Grid, a, b Position) {
	if a.X == b.X || a.Y == b.Y {
		carveStraight(grid, a, b)
		return
	}

	corner := Position{X: a.X, Y: b.Y}
	carveStraight(grid, a, corner)
	carveStraight(grid, b, corner)
}

// carveStraight carves an axis-aligned run between two points that share a
// row or column, endpoints included.
func carveStraight(grid *Grid, a, b Position) {
	if a.X == b.X {
		carveVerticalTunnel(grid, a.Y, b.Y, a.X)
	} else {
		carveHorizontalTunnel(grid, a.X, b.X, a.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func carveHorizontalTunnel(grid *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	grid.fillEmpty(x1, y, x2-x1+1, 1, TileHallway)
}

// carveVerticalTunnel carves a vertical tunnel.
func carveVerticalTunnel(grid *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	grid.fillEmpty(x, y1, 1, y2-y1+1, TileHallway)
}
