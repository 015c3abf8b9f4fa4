package world

import (
	"fmt"
	"slices"

	"github.com/samdwyer/dungeonseed/internal/random"
)

// RoomCount returns the number of rooms to place: p.RoomCount when set,
// otherwise a Gaussian sample. The result is never below one.
func RoomCount(rng *random.Source, p Params) int {
	n := p.RoomCount
	if n == 0 {
		n = rng.GaussianInt(p.RoomCountMean, p.RoomCountStdDev)
	}
	return max(n, 1)
}

// PlaceRooms carves count non-overlapping rooms into the grid. Anchors are
// drawn from [2, size-2) on each axis and dimensions from the room size
// distribution, clamped so every room leaves space for its wall.
//
// The returned rooms are sorted by anchor position. attempts reports how many
// candidates were drawn; when it reaches p.MaxRoomAttempts first, the rooms
// placed so far are returned with ErrCapacityExceeded.
func PlaceRooms(grid *Grid, rng *random.Source, count int, p Params) (rooms []Room, attempts int, err error) {
	rooms = make([]Room, 0, count)

	for len(rooms) < count {
		if attempts == p.MaxRoomAttempts {
			return rooms, attempts, fmt.Errorf("%w: rooms: placed %d of %d after %d attempts",
				ErrCapacityExceeded, len(rooms), count, attempts)
		}
		attempts++

		px := rng.Uniform(roomMargin, grid.Width-roomMargin)
		py := rng.Uniform(roomMargin, grid.Height-roomMargin)
		width := clampRoomSize(rng.GaussianInt(p.RoomSizeMean, p.RoomSizeStdDev), grid.Width-px-1)
		height := clampRoomSize(rng.GaussianInt(p.RoomSizeMean, p.RoomSizeStdDev), grid.Height-py-1)

		room := Room{
			ID:     len(rooms),
			X:      px,
			Y:      py,
			Width:  width,
			Height: height,
		}
		if overlapsAny(rooms, room) {
			continue
		}

		rooms = append(rooms, room)
		carveRoom(grid, room)
	}

	slices.SortFunc(rooms, roomLess)
	return rooms, attempts, nil
}

// clampRoomSize limits a sampled dimension to the space left before the
// grid edge, but never below minRoomSize.
func clampRoomSize(size, remaining int) int {
	return max(min(size, remaining), minRoomSize)
}

func overlapsAny(rooms []Room, candidate Room) bool {
	for _, r := range rooms {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

// carveRoom sets all empty tiles within the room to floor.
func carveRoom(grid *Grid, room Room) {
	grid.fillEmpty(room.X, room.Y, room.Width, room.Height, TileFloor)
}
