// Package world provides dungeon layout generation and the tile grid it
// produces.
package world

// TileState is the categorical state of a single grid cell.
type TileState uint8

const (
	// TileEmpty is uncarved rock outside the dungeon.
	TileEmpty TileState = iota
	// TileFloor is the interior of a room.
	TileFloor
	// TileHallway is a carved corridor tile.
	TileHallway
	// TileWall borders every carved area.
	TileWall
	// TileLockedDoor is the single exit, converted from a wall.
	TileLockedDoor
	// TilePlayerSpawn is where the player starts, converted from a floor.
	TilePlayerSpawn
)

// IsCarved returns true for tiles that are open space inside the dungeon.
func (t TileState) IsCarved() bool {
	return t == TileFloor || t == TileHallway || t == TilePlayerSpawn
}

// IsPassable returns true if the tile can be walked on.
func (t TileState) IsPassable() bool {
	return t.IsCarved()
}

// Rune returns the tile's display character.
func (t TileState) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileHallway:
		return '.'
	case TileWall:
		return '#'
	case TileLockedDoor:
		return '+'
	case TilePlayerSpawn:
		return '@'
	default:
		return ' '
	}
}

// String returns a human-readable tile name.
func (t TileState) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileHallway:
		return "hallway"
	case TileWall:
		return "wall"
	case TileLockedDoor:
		return "locked_door"
	case TilePlayerSpawn:
		return "player_spawn"
	default:
		return "unknown"
	}
}
