package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/dungeonseed/internal/world"
)

var tileStyles = map[world.TileState]lipgloss.Style{
	world.TileWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	world.TileFloor:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	world.TileHallway:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	world.TileLockedDoor:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	world.TilePlayerSpawn: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
}

// Format renders the grid as text, top row first. With styled set, runs of
// equal tiles are colored with lipgloss; colors are dropped automatically
// when the output is not a terminal.
func Format(grid *world.Grid, styled bool) string {
	if !styled {
		return grid.String()
	}

	var b strings.Builder
	for y := grid.Height - 1; y >= 0; y-- {
		x := 0
		for x < grid.Width {
			tile := grid.At(x, y)
			end := x + 1
			for end < grid.Width && grid.At(end, y) == tile {
				end++
			}
			run := strings.Repeat(string(tile.Rune()), end-x)
			if style, ok := tileStyles[tile]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			x = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend returns a one-line key for the tile glyphs.
func Legend() string {
	parts := []string{
		tileStyles[world.TileWall].Render("#") + " wall",
		tileStyles[world.TileFloor].Render(".") + " floor",
		tileStyles[world.TileLockedDoor].Render("+") + " locked door",
		tileStyles[world.TilePlayerSpawn].Render("@") + " spawn",
	}
	return strings.Join(parts, "  ")
}
