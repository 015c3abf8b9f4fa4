package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonseed/internal/world"
)

// DefaultMarginOffset is the number of status rows kept below the map.
const DefaultMarginOffset = 2

// ErrNotInitialized is returned when drawing before Initialize.
var ErrNotInitialized = errors.New("ui: renderer not initialized")

// Renderer handles drawing dungeon grids to the screen.
//
// The canvas is laid out top to bottom as headerOffset rows of header text,
// the map with its top row first, then marginOffset rows of status text.
type Renderer struct {
	screen *Screen

	width, height int
	headerOffset  int
	marginOffset  int
	initialized   bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Initialize fixes the canvas geometry for subsequent draws.
func (r *Renderer) Initialize(width, height, headerOffset, marginOffset int) {
	r.width = width
	r.height = height
	r.headerOffset = max(headerOffset, 0)
	r.marginOffset = max(marginOffset, 0)
	r.initialized = true
}

// CanvasSize returns the total number of columns and rows the renderer uses.
func (r *Renderer) CanvasSize() (width, height int) {
	return r.width, r.headerOffset + r.height + r.marginOffset
}

// ScreenPosition maps a grid position to its screen cell.
func (r *Renderer) ScreenPosition(p world.Position) (x, y int) {
	return p.X, r.headerOffset + (r.height - 1 - p.Y)
}

// Draw renders the grid to the screen. The grid must match the initialized
// dimensions.
func (r *Renderer) Draw(grid *world.Grid) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	if grid.Width != r.width || grid.Height != r.height {
		return fmt.Errorf("ui: grid %dx%d does not match canvas %dx%d",
			grid.Width, grid.Height, r.width, r.height)
	}

	r.screen.Clear()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.At(x, y)
			sx, sy := r.ScreenPosition(world.Position{X: x, Y: y})
			r.screen.SetContent(sx, sy, tile.Rune(), r.getTileStyle(tile))
		}
	}

	r.screen.Show()
	return nil
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.TileState) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileHallway:
		return tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	case world.TileLockedDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	case world.TilePlayerSpawn:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// RenderHeader writes a line of text into the given header row.
func (r *Renderer) RenderHeader(msg string, row int) {
	if row < 0 || row >= r.headerOffset {
		return
	}
	r.renderText(msg, row, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

// RenderMessage writes a line of text into the given status row below the
// map.
func (r *Renderer) RenderMessage(msg string, row int) {
	if row < 0 || row >= r.marginOffset {
		return
	}
	r.renderText(msg, r.headerOffset+r.height+row, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) renderText(msg string, y int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	r.screen.Show()
}
