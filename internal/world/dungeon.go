package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonseed/internal/logger"
	"github.com/samdwyer/dungeonseed/internal/random"
	"github.com/samdwyer/dungeonseed/internal/telemetry"
)

// Result is a finished dungeon layout.
type Result struct {
	Seed   int64
	Width  int
	Height int
	Grid   *Grid
	Rooms  []Room // sorted by anchor, in corridor order
	Door   Position
	Spawns []Position
}

// Spawn returns the first player spawn position.
func (r *Result) Spawn() Position {
	if len(r.Spawns) == 0 {
		return Position{X: -1, Y: -1}
	}
	return r.Spawns[0]
}

// String renders the layout as text, top row first.
func (r *Result) String() string {
	return r.Grid.String()
}

// Generator produces dungeon layouts for a fixed seed and size. Every call
// to Generate starts from a fresh random source, so repeated calls return
// identical results.
type Generator struct {
	seed   int64
	width  int
	height int
	params Params
}

// NewGenerator validates the dimensions and parameters and returns a
// generator. It fails with ErrConfiguration when the grid is too small to
// hold a single room.
func NewGenerator(seed int64, width, height int, params Params) (*Generator, error) {
	if err := params.Validate(width, height); err != nil {
		return nil, err
	}
	return &Generator{
		seed:   seed,
		width:  width,
		height: height,
		params: params,
	}, nil
}

// Generate runs the full pipeline: rooms, corridors, walls, door, spawns.
// The random source is consumed in exactly that order.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	log := logger.With("seed", g.seed, "width", g.width, "height", g.height)

	rng := random.New(g.seed)
	grid := NewGrid(g.width, g.height)
	result := &Result{
		Seed:   g.seed,
		Width:  g.width,
		Height: g.height,
		Grid:   grid,
	}

	target := RoomCount(rng, g.params)
	err := phase(ctx, tracer, "rooms.place", func(s trace.Span) error {
		rooms, attempts, err := PlaceRooms(grid, rng, target, g.params)
		result.Rooms = rooms
		s.SetAttributes(
			attribute.Int("rooms.target", target),
			attribute.Int("rooms.placed", len(rooms)),
			attribute.Int("rooms.attempts", attempts),
		)
		log.Debug("rooms placed", "target", target, "placed", len(rooms), "attempts", attempts)
		return err
	})
	if err != nil {
		return nil, fail(span, err)
	}

	err = phase(ctx, tracer, "corridors.connect", func(s trace.Span) error {
		ConnectRooms(grid, rng, result.Rooms)
		s.SetAttributes(attribute.Int("corridors.links", max(len(result.Rooms)-1, 0)))
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	err = phase(ctx, tracer, "walls.build", func(s trace.Span) error {
		walls := BuildWalls(grid)
		s.SetAttributes(attribute.Int("walls.placed", walls))
		log.Debug("walls built", "walls", walls)
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	err = phase(ctx, tracer, "door.place", func(s trace.Span) error {
		door, attempts, err := PlaceDoor(grid, rng, g.params.MaxDoorAttempts)
		result.Door = door
		s.SetAttributes(attribute.Int("door.attempts", attempts))
		log.Debug("door placed", "x", door.X, "y", door.Y, "attempts", attempts)
		return err
	})
	if err != nil {
		return nil, fail(span, err)
	}

	err = phase(ctx, tracer, "spawn.place", func(s trace.Span) error {
		spawns, err := PlaceSpawns(grid, rng, g.params.Spawns, g.params.MaxSpawnAttempts)
		result.Spawns = spawns
		s.SetAttributes(attribute.Int("spawn.placed", len(spawns)))
		return err
	})
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", g.seed),
		attribute.Int("dungeon.width", g.width),
		attribute.Int("dungeon.height", g.height),
		attribute.Int("dungeon.room_count", len(result.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.Info("dungeon generated", "rooms", len(result.Rooms),
		"door_x", result.Door.X, "door_y", result.Door.Y)

	return result, nil
}

// phase runs fn inside a child span after checking for cancellation.
func phase(ctx context.Context, tracer trace.Tracer, name string, fn func(trace.Span) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(span); err != nil {
		return fail(span, err)
	}
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Generate is a convenience wrapper around NewGenerator and Generate using
// the default parameters.
func Generate(ctx context.Context, seed int64, width, height int) (*Result, error) {
	g, err := NewGenerator(seed, width, height, DefaultParams())
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}
