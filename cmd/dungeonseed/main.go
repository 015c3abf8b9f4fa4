// Package main is the entry point for dungeonseed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonseed/internal/config"
	"github.com/samdwyer/dungeonseed/internal/logger"
	"github.com/samdwyer/dungeonseed/internal/random"
	"github.com/samdwyer/dungeonseed/internal/telemetry"
	"github.com/samdwyer/dungeonseed/internal/ui"
	"github.com/samdwyer/dungeonseed/internal/viewer"
	"github.com/samdwyer/dungeonseed/internal/world"
)

// options holds command-line settings that are not part of Config.
type options struct {
	configPath string
	print      bool
	plain      bool
	validate   bool
	poisson    bool
}

func main() {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg.Logging.ApplyEnv()
	if !opts.print && !opts.validate {
		// tcell owns the terminal; console output would corrupt the display
		cfg.Logging.ConsoleEnabled = false
		cfg.Logging.FileEnabled = true
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	applyTelemetryEnv(&cfg.Telemetry)
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warning("telemetry setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	gen := &cfg.Generation
	if gen.Seed == 0 {
		gen.Seed = time.Now().UnixNano()
	}
	if opts.poisson {
		// Separate source so the generator's own sampling order is untouched
		gen.Params.RoomCount = max(random.New(gen.Seed).Poisson(gen.Params.RoomCountMean), 1)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New()
	logger.Info("starting", "run_id", runID.String(), "seed", gen.Seed,
		"width", gen.Width, "height", gen.Height, "room_count", gen.Params.RoomCount)

	ctx, span := telemetry.Tracer("cmd").Start(ctx, "dungeonseed.run",
		trace.WithAttributes(
			attribute.String("run.id", runID.String()),
			attribute.Int64("run.seed", gen.Seed),
		))
	defer span.End()

	if !opts.print && !opts.validate {
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize screen: %w", err)
		}
		v := viewer.New(screen, viewer.Options{
			Seed:         gen.Seed,
			Width:        gen.Width,
			Height:       gen.Height,
			HeaderOffset: gen.HeaderOffset,
			Params:       gen.Params,
		})
		return v.Run(ctx)
	}

	g, err := world.NewGenerator(gen.Seed, gen.Width, gen.Height, gen.Params)
	if err != nil {
		return err
	}
	res, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	if opts.validate {
		if err := world.Validate(res); err != nil {
			return err
		}
		if !world.Connected(res.Grid) {
			return fmt.Errorf("%w: layout is not connected", world.ErrInvalidLayout)
		}
		logger.Info("layout valid", "run_id", runID.String(), "rooms", len(res.Rooms))
	}

	if opts.print {
		fmt.Fprintf(stdout, "seed %d  %dx%d  rooms %d  door (%d,%d)  spawn (%d,%d)\n",
			res.Seed, res.Width, res.Height, len(res.Rooms),
			res.Door.X, res.Door.Y, res.Spawn().X, res.Spawn().Y)
		if opts.plain {
			fmt.Fprint(stdout, res)
		} else {
			fmt.Fprint(stdout, ui.Format(res.Grid, true))
			fmt.Fprintln(stdout, ui.Legend())
		}
	}

	return nil
}

// parseArgs loads the config file and applies any flags that were set
// explicitly on top of it.
func parseArgs(args []string) (*config.Config, options, error) {
	var opts options
	fs := flag.NewFlagSet("dungeonseed", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	seed := fs.Int64("seed", 0, "Seed for generation (0 picks one from the clock)")
	width := fs.Int("width", world.DefaultWidth, "Grid width")
	height := fs.Int("height", world.DefaultHeight, "Grid height")
	header := fs.Int("header", 0, "Rows reserved above the map in the viewer")
	spawns := fs.Int("spawns", 1, "Number of player spawn tiles")
	fs.BoolVar(&opts.poisson, "poisson", false, "Draw the room count from Poisson(mean) instead of a Gaussian")
	fs.BoolVar(&opts.print, "print", false, "Print the layout to stdout instead of opening the viewer")
	fs.BoolVar(&opts.plain, "plain", false, "With -print, disable colors")
	fs.BoolVar(&opts.validate, "validate", false, "Check the layout invariants and exit non-zero on failure")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}
	if fs.NArg() > 0 {
		return nil, opts, errors.New("unexpected arguments: " + fmt.Sprint(fs.Args()))
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Generation.Seed = *seed
		case "width":
			cfg.Generation.Width = *width
		case "height":
			cfg.Generation.Height = *height
		case "header":
			cfg.Generation.HeaderOffset = *header
		case "spawns":
			cfg.Generation.Params.Spawns = *spawns
		}
	})

	return cfg, opts, nil
}

// applyTelemetryEnv enables tracing when DUNGEONSEED_OTLP_ENDPOINT is set,
// and sends DUNGEONSEED_OTLP_API_KEY as the x-api-key header.
func applyTelemetryEnv(cfg *telemetry.Config) {
	if endpoint := os.Getenv("DUNGEONSEED_OTLP_ENDPOINT"); endpoint != "" {
		cfg.Enabled = true
		cfg.Endpoint = endpoint
	}
	if apiKey := os.Getenv("DUNGEONSEED_OTLP_API_KEY"); apiKey != "" {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers["x-api-key"] = apiKey
	}
}
