package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	ID            int // Order of acceptance during placement
	X, Y          int // Lower-left corner position
	Width, Height int // Dimensions of the room
}

// Bounds returns the room's bounding box. x2 and y2 are exclusive.
func (r Room) Bounds() (x1, y1, x2, y2 int) {
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps returns true if this room collides with another room.
//
// The y-ranges are compared with a one-row buffer so that two rooms never
// share a wall horizontally; the x-ranges get no buffer, which lets rooms sit
// flush side by side. Layouts for existing seeds depend on this asymmetry.
func (r Room) Overlaps(other Room) bool {
	ax1, ay1, ax2, ay2 := r.Bounds()
	bx1, by1, bx2, by2 := other.Bounds()
	return ax1 < bx2 && ax2 > bx1 &&
		ay1 < by2+1 && ay2+1 > by1
}

// roomLess orders rooms by anchor position, falling back to ID.
func roomLess(a, b Room) int {
	if a.X != b.X {
		return a.X - b.X
	}
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.ID - b.ID
}
