// Package viewer provides the interactive terminal loop for browsing
// generated dungeons seed by seed.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonseed/internal/logger"
	"github.com/samdwyer/dungeonseed/internal/telemetry"
	"github.com/samdwyer/dungeonseed/internal/ui"
	"github.com/samdwyer/dungeonseed/internal/world"
)

// Options configures what the viewer generates and how it lays out the map.
type Options struct {
	Seed         int64
	Width        int
	Height       int
	HeaderOffset int
	Params       world.Params
}

// Viewer holds the display state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	opts     Options
	seed     int64
	result   *world.Result
	status   string
	running  bool
}

// New creates a viewer drawing to the given screen.
func New(screen *ui.Screen, opts Options) *Viewer {
	renderer := ui.NewRenderer(screen)
	renderer.Initialize(opts.Width, opts.Height, opts.HeaderOffset, ui.DefaultMarginOffset)

	return &Viewer{
		screen:   screen,
		renderer: renderer,
		opts:     opts,
		seed:     opts.Seed,
		running:  true,
	}
}

// Seed returns the seed currently displayed.
func (v *Viewer) Seed() int64 {
	return v.seed
}

// Result returns the layout currently displayed, or nil if the last
// generation failed.
func (v *Viewer) Result() *world.Result {
	return v.result
}

// Run executes the display loop until the user quits or the screen closes.
// The screen is closed on return.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.regenerate(ctx); err != nil {
		return err
	}

	for v.running {
		v.draw()

		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := v.handleEvent(ctx, ev); err != nil {
			return err
		}
	}

	return nil
}

// regenerate builds the layout for the current seed. Placement failures are
// shown to the user; configuration and context errors are returned.
func (v *Viewer) regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()
	span.SetAttributes(attribute.Int64("viewer.seed", v.seed))

	gen, err := world.NewGenerator(v.seed, v.opts.Width, v.opts.Height, v.opts.Params)
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		logger.Warning("generation failed", "seed", v.seed, "error", err)
		v.result = nil
		v.status = fmt.Sprintf("seed %d: %v", v.seed, err)
		return nil
	}

	v.result = res
	v.status = fmt.Sprintf("seed %d  rooms %d  door (%d,%d)", v.seed, len(res.Rooms), res.Door.X, res.Door.Y)
	return nil
}

func (v *Viewer) draw() {
	if v.result != nil {
		if err := v.renderer.Draw(v.result.Grid); err != nil {
			logger.Error("draw failed", "error", err)
		}
	} else {
		v.screen.Clear()
	}
	v.renderer.RenderHeader("n: next seed  p: previous seed  q: quit", 0)
	v.renderer.RenderMessage(v.status, 0)
}

func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			v.seed++
			return v.regenerate(ctx)
		case 'p', 'P':
			v.seed--
			return v.regenerate(ctx)
		}
	}
	return nil
}
