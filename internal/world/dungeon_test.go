package world

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)
	ctx := context.Background()

	d1, err := Generate(ctx, seed, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	d2, err := Generate(ctx, seed, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	// Verify same number of rooms
	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}

	// Verify rooms are in same positions
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}

	if d1.Door != d2.Door {
		t.Errorf("Door mismatch: %+v != %+v", d1.Door, d2.Door)
	}
	if d1.Spawn() != d2.Spawn() {
		t.Errorf("Spawn mismatch: %+v != %+v", d1.Spawn(), d2.Spawn())
	}

	// Verify tiles are identical
	for y := 0; y < d1.Height; y++ {
		for x := 0; x < d1.Width; x++ {
			if d1.Grid.Tiles[y][x] != d2.Grid.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, d1.Grid.Tiles[y][x], d2.Grid.Tiles[y][x])
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	// Generate two dungeons with different seeds - they should be different
	ctx := context.Background()
	d1, err := Generate(ctx, 12345, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	d2, err := Generate(ctx, 54321, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	// Very unlikely to be identical by chance
	if d1.Grid.Equal(d2.Grid) {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestGenerateExampleScenario(t *testing.T) {
	res, err := Generate(context.Background(), 2018, 80, 40)
	require.NoError(t, err)
	require.NoError(t, Validate(res))

	assert.Equal(t, int64(2018), res.Seed)
	assert.GreaterOrEqual(t, len(res.Rooms), 5)
	assert.LessOrEqual(t, len(res.Rooms), 45)
	assert.Equal(t, 1, res.Grid.Count(TileLockedDoor))
	assert.Equal(t, 1, res.Grid.Count(TilePlayerSpawn))
	assert.Len(t, res.Spawns, 1)
	assert.True(t, Connected(res.Grid), "rooms and corridors form one network")

	// The door is the lowest wall in its column
	for y := 1; y < res.Door.Y; y++ {
		assert.NotEqual(t, TileWall, res.Grid.At(res.Door.X, y), "wall below door at y=%d", y)
	}
}

func TestGenerateInvariantsAcrossSeeds(t *testing.T) {
	params := DefaultParams()
	params.RoomCount = 15

	for seed := int64(1); seed <= 25; seed++ {
		g, err := NewGenerator(seed, DefaultWidth, DefaultHeight, params)
		require.NoError(t, err)

		res, err := g.Generate(context.Background())
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, Validate(res), "seed %d", seed)
		assert.Len(t, res.Rooms, 15, "seed %d", seed)
		assert.True(t, Connected(res.Grid), "seed %d is disconnected", seed)
	}
}

func TestGenerateIdempotentRerun(t *testing.T) {
	g, err := NewGenerator(77, 60, 30, DefaultParams())
	require.NoError(t, err)

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	second, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.True(t, first.Grid.Equal(second.Grid))
	assert.Equal(t, first.Rooms, second.Rooms)
	assert.Equal(t, first.Door, second.Door)
	assert.Equal(t, first.Spawns, second.Spawns)
	assert.Equal(t, first.Grid.String(), second.Grid.String())
}

func TestGenerateSmallestGrid(t *testing.T) {
	params := DefaultParams()
	params.RoomCount = 1

	g, err := NewGenerator(5, MinDimension, MinDimension, params)
	require.NoError(t, err)

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, Validate(res))

	assert.Equal(t, []Room{{ID: 0, X: 2, Y: 2, Width: 2, Height: 2}}, res.Rooms)
	assert.Equal(t, Position{X: 2, Y: 2}, res.Spawn())
	assert.Equal(t, 1, res.Door.Y)
	assert.Contains(t, []int{2, 3}, res.Door.X)
}

func TestGenerateCapacityExceeded(t *testing.T) {
	params := DefaultParams()
	params.RoomCount = 3
	params.MaxRoomAttempts = 500

	g, err := NewGenerator(1, MinDimension, MinDimension, params)
	require.NoError(t, err)

	_, err = g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Contains(t, err.Error(), "rooms")
}

func TestNewGeneratorRejectsConfiguration(t *testing.T) {
	bad := DefaultParams()
	bad.MaxDoorAttempts = 0
	negative := DefaultParams()
	negative.Spawns = -1

	tests := []struct {
		name          string
		width, height int
		params        Params
	}{
		{"narrow", 4, 40, DefaultParams()},
		{"short", 80, 3, DefaultParams()},
		{"zero", 0, 0, DefaultParams()},
		{"no door budget", 80, 40, bad},
		{"negative spawns", 80, 40, negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(1, tt.width, tt.height, tt.params)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, 2018, DefaultWidth, DefaultHeight)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateMultipleSpawns(t *testing.T) {
	params := DefaultParams()
	params.Spawns = 4

	g, err := NewGenerator(9, DefaultWidth, DefaultHeight, params)
	require.NoError(t, err)
	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, Validate(res))

	assert.Len(t, res.Spawns, 4)
	assert.Equal(t, 4, res.Grid.Count(TilePlayerSpawn))
}

func TestGenerateRecordsPhaseSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, err := Generate(context.Background(), 2018, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{
		"rooms.place",
		"corridors.connect",
		"walls.build",
		"door.place",
		"spawn.place",
		"dungeon.generate",
	}, names)
}
