package navigation

import (
	"time"

	"github.com/Esderin/Standard-of-Iron/internal/buildings"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	"github.com/Esderin/Standard-of-Iron/internal/terrain"
)

// Level describes a loaded level.
type Level struct {
	ID          string
	Width       int
	Height      int
	CellSize    float64
	OffsetX     float64
	OffsetZ     float64
	TerrainRows []string
	Buildings   []buildings.Footprint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateLevelInput defines the request for creating a level
type CreateLevelInput struct {
	Width    int
	Height   int
	CellSize float64
	OffsetX  float64
	OffsetZ  float64

	// TerrainRows uses the terrain glyphs. Empty means all flat.
	TerrainRows []string

	// Mountains and then Hills are stamped onto the terrain. The result is
	// stored as TerrainRows.
	Mountains []terrain.MountainFeature
	Hills     []terrain.HillFeature
}

// CreateLevelOutput defines the response for creating a level
type CreateLevelOutput struct {
	Level *Level
}

// GetLevelInput defines the request for getting a level
type GetLevelInput struct {
	LevelID string
}

// GetLevelOutput defines the response for getting a level
type GetLevelOutput struct {
	Level *Level
}

// DeleteLevelInput defines the request for deleting a level
type DeleteLevelInput struct {
	LevelID string
}

// DeleteLevelOutput defines the response for deleting a level
type DeleteLevelOutput struct{}

// ListLevelsInput defines the request for listing levels
type ListLevelsInput struct{}

// ListLevelsOutput defines the response for listing levels
type ListLevelsOutput struct {
	LevelIDs []string
}

// FindPathInput defines a blocking path query
type FindPathInput struct {
	LevelID string
	Start   pathfinding.Point
	End     pathfinding.Point
}

// FindPathOutput holds the path; empty when unreachable.
type FindPathOutput struct {
	Path []pathfinding.Point
}

// SubmitPathRequestInput queues a path query under a caller-chosen id.
// Ids with the top bit set are reserved for unit moves.
type SubmitPathRequestInput struct {
	LevelID   string
	RequestID uint64
	Start     pathfinding.Point
	End       pathfinding.Point
}

// SubmitPathRequestOutput defines the response for submitting a request
type SubmitPathRequestOutput struct{}

// FetchCompletedPathsInput defines the request for draining results
type FetchCompletedPathsInput struct {
	LevelID string
}

// FetchCompletedPathsOutput holds results in completion order.
type FetchCompletedPathsOutput struct {
	Results []pathfinding.PathResult
}

// SetObstacleInput marks one cell. The change lasts until the next obstacle
// rebuild and is not persisted.
type SetObstacleInput struct {
	LevelID string
	X       int
	Y       int
	Blocked bool
}

// SetObstacleOutput defines the response for setting an obstacle
type SetObstacleOutput struct{}

// PlaceBuildingInput defines the request for placing a building
type PlaceBuildingInput struct {
	LevelID   string
	Footprint buildings.Footprint
}

// PlaceBuildingOutput defines the response for placing a building
type PlaceBuildingOutput struct{}

// RemoveBuildingInput defines the request for removing a building
type RemoveBuildingInput struct {
	LevelID    string
	BuildingID string
}

// RemoveBuildingOutput defines the response for removing a building
type RemoveBuildingOutput struct{}

// RequestUnitMoveInput asks for a route from a unit's world position to a
// world target.
type RequestUnitMoveInput struct {
	LevelID  string
	UnitID   string
	Position pathfinding.WorldCell
	Target   pathfinding.WorldCell

	// AllowDirectFallback lets short moves skip the search and lets failed
	// searches fall back to walking straight at the target.
	AllowDirectFallback bool
}

// RequestUnitMoveOutput reports how the move was handled. RequestID is zero
// for direct moves.
type RequestUnitMoveOutput struct {
	RequestID uint64
	Direct    bool
	Target    pathfinding.WorldCell
}

// CollectUnitPathsInput defines the request for collecting unit routes.
// Positions optionally overrides where each unit currently stands; units
// missing from it use the position given when the move was requested.
type CollectUnitPathsInput struct {
	LevelID   string
	Positions map[string]pathfinding.WorldCell
}

// UnitRoute is the movement decision for one unit.
type UnitRoute struct {
	UnitID    string
	RequestID uint64

	// Waypoints are world positions still to visit, nearest first.
	Waypoints []pathfinding.WorldCell

	// Target is where the unit should head now. When HasTarget is false the
	// unit should stop.
	Target    pathfinding.WorldCell
	HasTarget bool
}

// CollectUnitPathsOutput holds one route per completed, still-current move.
type CollectUnitPathsOutput struct {
	Routes []UnitRoute
}
