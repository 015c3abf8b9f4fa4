package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonseed/internal/world"
)

func newSimScreen(t *testing.T, w, h int) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return screen
}

func sampleGrid() *world.Grid {
	grid := world.NewGrid(6, 5)
	grid.Set(2, 2, world.TileFloor)
	grid.Set(3, 2, world.TileHallway)
	world.BuildWalls(grid)
	grid.Set(2, 1, world.TileLockedDoor)
	grid.Set(2, 2, world.TilePlayerSpawn)
	return grid
}

func TestDrawBeforeInitialize(t *testing.T) {
	r := NewRenderer(newSimScreen(t, 20, 20))
	assert.ErrorIs(t, r.Draw(sampleGrid()), ErrNotInitialized)
}

func TestDrawRejectsMismatchedGrid(t *testing.T) {
	r := NewRenderer(newSimScreen(t, 20, 20))
	r.Initialize(10, 10, 0, 0)
	assert.Error(t, r.Draw(sampleGrid()))
}

func TestDrawFlipsRowsBelowHeader(t *testing.T) {
	screen := newSimScreen(t, 20, 20)
	r := NewRenderer(screen)
	r.Initialize(6, 5, 3, DefaultMarginOffset)

	w, h := r.CanvasSize()
	assert.Equal(t, 6, w)
	assert.Equal(t, 10, h)

	require.NoError(t, r.Draw(sampleGrid()))

	// Grid row y lands on screen row 3 + (5-1-y)
	assert.Equal(t, '@', screen.Content(2, 5))
	assert.Equal(t, '.', screen.Content(3, 5))
	assert.Equal(t, '+', screen.Content(2, 6))
	assert.Equal(t, '#', screen.Content(1, 4))
	sx, sy := r.ScreenPosition(world.Position{X: 2, Y: 2})
	assert.Equal(t, [2]int{2, 5}, [2]int{sx, sy})
}

func TestRenderTextStaysInReservedRows(t *testing.T) {
	screen := newSimScreen(t, 20, 20)
	r := NewRenderer(screen)
	r.Initialize(6, 5, 1, 2)

	r.RenderHeader("seed", 0)
	r.RenderMessage("ok", 1)
	r.RenderHeader("ignored", 1)
	r.RenderMessage("ignored", 2)

	assert.Equal(t, 's', screen.Content(0, 0))
	assert.Equal(t, 'o', screen.Content(0, 7))
	assert.NotEqual(t, 'i', screen.Content(0, 1))
	assert.NotEqual(t, 'i', screen.Content(0, 8))
}

func TestFormatPlain(t *testing.T) {
	grid := sampleGrid()
	out := Format(grid, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " #### ", lines[1])
	assert.Equal(t, " #@.# ", lines[2])
	assert.Equal(t, " #+## ", lines[3])
}

func TestFormatStyledKeepsGlyphs(t *testing.T) {
	res, err := world.Generate(context.Background(), 2018, world.DefaultWidth, world.DefaultHeight)
	require.NoError(t, err)

	out := Format(res.Grid, true)
	assert.Equal(t, res.Grid.Height, strings.Count(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "@"))
	assert.Equal(t, 1, strings.Count(out, "+"))
	assert.Contains(t, Legend(), "locked door")
}
