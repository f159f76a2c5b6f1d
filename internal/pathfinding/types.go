package pathfinding

// Point is a cell coordinate in grid space.
type Point struct {
	X int
	Y int
}

// PathResult is a completed queued request.
type PathResult struct {
	RequestID uint64
	// Path runs from start to end inclusive. Empty when the request had an
	// unwalkable endpoint or no route was found.
	Path []Point
}

// WorldCell is a world-space coordinate on the ground plane.
type WorldCell struct {
	X float64
	Z float64
}

//go:generate mockgen -destination=mock/mock_types.go -package=pathfindingmock -source=types.go

// TerrainSource reports static walkability.
// Cells outside Size are treated as blocked by the Pathfinder.
type TerrainSource interface {
	Size() (width, height int)
	IsWalkable(x, y int) bool
}

// Building is a single registered footprint.
type Building interface {
	// OccupiedCells returns the world-space centres of the cells the building
	// covers when the world is sampled every cellSize units.
	OccupiedCells(cellSize float64) []WorldCell
}

// BuildingRegistry enumerates the buildings currently placed in a level.
type BuildingRegistry interface {
	Buildings() []Building
}
