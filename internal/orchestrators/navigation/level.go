package navigation

import (
	"log/slog"

	"github.com/sasha-s/go-deadlock"

	"github.com/Esderin/Standard-of-Iron/internal/buildings"
	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	"github.com/Esderin/Standard-of-Iron/internal/repositories/levels"
	"github.com/Esderin/Standard-of-Iron/internal/terrain"
)

// unitRequestBit tags request ids generated for unit moves so they never
// collide with caller-chosen ids on the same pathfinder.
const unitRequestBit uint64 = 1 << 63

type unitRequest struct {
	unitID      string
	position    pathfinding.WorldCell
	target      pathfinding.WorldCell
	allowDirect bool
}

// level is the runtime state of one loaded level.
type level struct {
	pathfinder *pathfinding.Pathfinder
	registry   *buildings.Registry
	maxResults int

	// mu guards everything below. It is never held while waiting on the
	// pathfinder worker.
	mu            deadlock.Mutex
	data          levels.LevelData
	unitRequests  map[uint64]unitRequest
	unitToRequest map[string]uint64
	callerResults []pathfinding.PathResult
	unitResults   []pathfinding.PathResult
}

func newLevel(data *levels.LevelData, maxResults, maxCells int, logger *slog.Logger) (*level, error) {
	cellSize := data.CellSize
	if cellSize == 0 {
		cellSize = pathfinding.DefaultCellSize
	}

	var terrainSource pathfinding.TerrainSource
	if len(data.TerrainRows) > 0 {
		heightMap, err := terrain.ParseRows(data.TerrainRows)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid terrain for level %s", data.ID)
		}
		terrainSource = heightMap
	}

	registry, err := buildings.NewRegistry(&buildings.Config{
		CellSize: cellSize,
		Bounds:   levelBounds(data, cellSize),
		MaxCells: maxCells,
	})
	if err != nil {
		return nil, err
	}
	for _, footprint := range data.Buildings {
		if err := registry.Register(footprint); err != nil {
			return nil, errors.Wrapf(err, "invalid building %s in level %s", footprint.ID, data.ID)
		}
	}

	pathfinder, err := pathfinding.New(&pathfinding.Config{
		Width:             data.Width,
		Height:            data.Height,
		CellSize:          cellSize,
		OffsetX:           data.OffsetX,
		OffsetZ:           data.OffsetZ,
		Terrain:           terrainSource,
		Buildings:         registry,
		MaxPendingResults: maxResults,
		MaxCells:          maxCells,
		Logger:            logger.With("level_id", data.ID),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create pathfinder for level %s", data.ID)
	}

	return &level{
		pathfinder:    pathfinder,
		registry:      registry,
		maxResults:    maxResults,
		data:          *data,
		unitRequests:  make(map[uint64]unitRequest),
		unitToRequest: make(map[string]uint64),
	}, nil
}

// levelBounds is the world-space area covered by the grid: each cell spans
// half a cell either side of its centre.
func levelBounds(data *levels.LevelData, cellSize float64) *buildings.Bounds {
	return &buildings.Bounds{
		MinX: (data.OffsetX - 0.5) * cellSize,
		MinZ: (data.OffsetZ - 0.5) * cellSize,
		MaxX: (data.OffsetX + float64(data.Width) - 0.5) * cellSize,
		MaxZ: (data.OffsetZ + float64(data.Height) - 0.5) * cellSize,
	}
}

func (l *level) snapshot() *Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &Level{
		ID:          l.data.ID,
		Width:       l.data.Width,
		Height:      l.data.Height,
		CellSize:    l.pathfinder.CellSize(),
		OffsetX:     l.data.OffsetX,
		OffsetZ:     l.data.OffsetZ,
		TerrainRows: append([]string(nil), l.data.TerrainRows...),
		Buildings:   append([]buildings.Footprint(nil), l.data.Buildings...),
		CreatedAt:   l.data.CreatedAt,
		UpdatedAt:   l.data.UpdatedAt,
	}
}

// drainLocked moves finished pathfinder results into the caller and unit
// buffers.
func (l *level) drainLocked() {
	for _, result := range l.pathfinder.FetchCompletedPaths() {
		if result.RequestID&unitRequestBit != 0 {
			l.unitResults = appendCapped(l.unitResults, result, l.maxResults)
		} else {
			l.callerResults = appendCapped(l.callerResults, result, l.maxResults)
		}
	}
}

// forgetUnitLocked drops the unit's pending move, if any.
func (l *level) forgetUnitLocked(unitID string) {
	if requestID, ok := l.unitToRequest[unitID]; ok {
		delete(l.unitRequests, requestID)
		delete(l.unitToRequest, unitID)
	}
}

func (l *level) close() {
	l.pathfinder.Close()
}

func appendCapped(results []pathfinding.PathResult, result pathfinding.PathResult, limit int) []pathfinding.PathResult {
	if limit > 0 && len(results) >= limit {
		results = results[1:]
	}
	return append(results, result)
}
