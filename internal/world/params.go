package world

import "fmt"

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 40

	// MinDimension is the smallest width or height that leaves a non-empty
	// anchor band [2, size-2) with room for a 2x2 room and its wall.
	MinDimension = 5

	// roomMargin keeps room anchors off the outer two rows and columns.
	roomMargin = 2

	// minRoomSize is the floor applied to sampled room dimensions.
	minRoomSize = 2
)

// Params holds the tunable distribution parameters and attempt budgets for
// a generation run.
type Params struct {
	// RoomCount fixes the number of rooms. 0 samples it from
	// Gaussian(RoomCountMean, RoomCountStdDev).
	RoomCount       int     `yaml:"room_count"`
	RoomCountMean   float64 `yaml:"room_count_mean"`
	RoomCountStdDev float64 `yaml:"room_count_stddev"`

	RoomSizeMean   float64 `yaml:"room_size_mean"`
	RoomSizeStdDev float64 `yaml:"room_size_stddev"`

	// Spawns is the number of player spawn tiles to place.
	Spawns int `yaml:"spawns"`

	MaxRoomAttempts  int `yaml:"max_room_attempts"`
	MaxDoorAttempts  int `yaml:"max_door_attempts"`
	MaxSpawnAttempts int `yaml:"max_spawn_attempts"`
}

// DefaultParams returns the stock generation parameters.
func DefaultParams() Params {
	return Params{
		RoomCountMean:    25,
		RoomCountStdDev:  5,
		RoomSizeMean:     5,
		RoomSizeStdDev:   4,
		Spawns:           1,
		MaxRoomAttempts:  100000,
		MaxDoorAttempts:  1000,
		MaxSpawnAttempts: 10000,
	}
}

// Validate checks the parameters against the given grid dimensions.
func (p Params) Validate(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrConfiguration, width, height, MinDimension, MinDimension)
	}
	if p.RoomCount < 0 {
		return fmt.Errorf("%w: room count %d is negative", ErrConfiguration, p.RoomCount)
	}
	if p.Spawns < 0 {
		return fmt.Errorf("%w: spawn count %d is negative", ErrConfiguration, p.Spawns)
	}
	if p.MaxRoomAttempts <= 0 || p.MaxDoorAttempts <= 0 || p.MaxSpawnAttempts <= 0 {
		return fmt.Errorf("%w: attempt budgets must be positive (rooms=%d door=%d spawn=%d)",
			ErrConfiguration, p.MaxRoomAttempts, p.MaxDoorAttempts, p.MaxSpawnAttempts)
	}
	return nil
}
