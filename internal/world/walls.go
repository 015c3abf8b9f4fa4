package world

// BuildWalls turns every empty tile touching a floor or hallway (including
// diagonally) into a wall, and returns how many walls were placed.
func BuildWalls(grid *Grid) int {
	placed := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Tiles[y][x] == TileEmpty && grid.carvedNeighbors(x, y, 1) >= 1 {
				grid.Tiles[y][x] = TileWall
				placed++
			}
		}
	}
	return placed
}
