package pathfinding

import "math"

type obstacleGrid struct {
	width   int
	height  int
	blocked []bool
}

func newObstacleGrid(width, height int) *obstacleGrid {
	return &obstacleGrid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}
}

func (g *obstacleGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *obstacleGrid) index(x, y int) int {
	return y*g.width + x
}

func (g *obstacleGrid) point(index int) Point {
	return Point{X: index % g.width, Y: index / g.width}
}

func (g *obstacleGrid) set(x, y int, blocked bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.blocked[g.index(x, y)] = blocked
}

func (g *obstacleGrid) walkable(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return !g.blocked[g.index(x, y)]
}

func (g *obstacleGrid) clear() {
	clear(g.blocked)
}

// overlayTerrain blocks every cell the terrain reports as unwalkable, plus
// every cell outside the terrain's own bounds.
func (g *obstacleGrid) overlayTerrain(terrain TerrainSource) {
	terrainWidth, terrainHeight := terrain.Size()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x >= terrainWidth || y >= terrainHeight || !terrain.IsWalkable(x, y) {
				g.blocked[g.index(x, y)] = true
			}
		}
	}
}

// overlayBuildings blocks the footprint cells of every building. Returns the
// number of cells that landed inside the grid.
func (g *obstacleGrid) overlayBuildings(buildings []Building, cellSize, offsetX, offsetZ float64) int {
	marked := 0
	for _, building := range buildings {
		if building == nil {
			continue
		}
		for _, cell := range building.OccupiedCells(cellSize) {
			x, y := worldToGrid(cell.X, cell.Z, cellSize, offsetX, offsetZ)
			if !g.inBounds(x, y) {
				continue
			}
			g.blocked[g.index(x, y)] = true
			marked++
		}
	}
	return marked
}

func worldToGrid(worldX, worldZ, cellSize, offsetX, offsetZ float64) (int, int) {
	x := int(math.Round(worldX/cellSize - offsetX))
	y := int(math.Round(worldZ/cellSize - offsetZ))
	return x, y
}
