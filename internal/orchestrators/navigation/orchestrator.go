// Package navigation manages per-level pathfinders: it loads levels from
// storage, keeps their building registries in sync, and turns completed
// searches into unit routes.
package navigation

//go:generate mockgen -destination=mock/mock_service.go -package=navigationmock github.com/Esderin/Standard-of-Iron/internal/orchestrators/navigation Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/sasha-s/go-deadlock"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	"github.com/Esderin/Standard-of-Iron/internal/pkg/clock"
	"github.com/Esderin/Standard-of-Iron/internal/pkg/idgen"
	"github.com/Esderin/Standard-of-Iron/internal/repositories/levels"
	"github.com/Esderin/Standard-of-Iron/internal/terrain"
)

const (
	// DefaultDirectPathThreshold is the Manhattan grid distance at or below
	// which a unit walks straight at its target without a search.
	DefaultDirectPathThreshold = 8

	// DefaultWaypointSkipRadius drops leading waypoints the unit already
	// stands on.
	DefaultWaypointSkipRadius = 0.6
)

// Service defines the navigation operations
type Service interface {
	CreateLevel(ctx context.Context, input *CreateLevelInput) (*CreateLevelOutput, error)
	GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error)
	DeleteLevel(ctx context.Context, input *DeleteLevelInput) (*DeleteLevelOutput, error)
	ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error)

	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)
	SubmitPathRequest(ctx context.Context, input *SubmitPathRequestInput) (*SubmitPathRequestOutput, error)
	FetchCompletedPaths(ctx context.Context, input *FetchCompletedPathsInput) (*FetchCompletedPathsOutput, error)

	SetObstacle(ctx context.Context, input *SetObstacleInput) (*SetObstacleOutput, error)
	PlaceBuilding(ctx context.Context, input *PlaceBuildingInput) (*PlaceBuildingOutput, error)
	RemoveBuilding(ctx context.Context, input *RemoveBuildingInput) (*RemoveBuildingOutput, error)

	RequestUnitMove(ctx context.Context, input *RequestUnitMoveInput) (*RequestUnitMoveOutput, error)
	CollectUnitPaths(ctx context.Context, input *CollectUnitPathsInput) (*CollectUnitPathsOutput, error)

	// Close stops every level's pathfinder after draining its queue.
	Close() error
}

// Config holds the dependencies for the navigation orchestrator
type Config struct {
	LevelRepo   levels.Repository
	IDGenerator idgen.Generator
	RequestIDs  idgen.RequestIDs
	Clock       clock.Clock

	// MaxPendingResults caps unfetched results per level. Zero is unbounded.
	MaxPendingResults int

	// DirectPathThreshold defaults to DefaultDirectPathThreshold.
	DirectPathThreshold int

	// WaypointSkipRadius defaults to DefaultWaypointSkipRadius.
	WaypointSkipRadius float64

	// MaxLevelCells bounds Width*Height of a level. Defaults to
	// pathfinding.DefaultMaxCells.
	MaxLevelCells int

	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.LevelRepo == nil {
		vb.RequiredField("LevelRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RequestIDs == nil {
		vb.RequiredField("RequestIDs")
	}
	if c.MaxPendingResults < 0 {
		vb.InvalidField("MaxPendingResults", "must not be negative")
	}
	if c.DirectPathThreshold < 0 {
		vb.InvalidField("DirectPathThreshold", "must not be negative")
	}
	if c.WaypointSkipRadius < 0 {
		vb.InvalidField("WaypointSkipRadius", "must not be negative")
	}
	if c.MaxLevelCells < 0 {
		vb.InvalidField("MaxLevelCells", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	repo         levels.Repository
	idGen        idgen.Generator
	requestIDs   idgen.RequestIDs
	clock        clock.Clock
	logger       *slog.Logger
	maxResults   int
	maxCells     int
	directRange  int
	skipRadiusSq float64

	mu     deadlock.RWMutex
	levels map[string]*level
	closed bool
}

// NewOrchestrator creates a new navigation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	directRange := cfg.DirectPathThreshold
	if directRange == 0 {
		directRange = DefaultDirectPathThreshold
	}
	skipRadius := cfg.WaypointSkipRadius
	if skipRadius == 0 {
		skipRadius = DefaultWaypointSkipRadius
	}
	maxCells := cfg.MaxLevelCells
	if maxCells == 0 {
		maxCells = pathfinding.DefaultMaxCells
	}

	return &orchestrator{
		repo:         cfg.LevelRepo,
		idGen:        cfg.IDGenerator,
		requestIDs:   cfg.RequestIDs,
		clock:        clk,
		logger:       logger,
		maxResults:   cfg.MaxPendingResults,
		maxCells:     maxCells,
		directRange:  directRange,
		skipRadiusSq: skipRadius * skipRadius,
		levels:       make(map[string]*level),
	}, nil
}

func (o *orchestrator) CreateLevel(ctx context.Context, input *CreateLevelInput) (*CreateLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if input.Height <= 0 {
		vb.InvalidField("Height", "must be positive")
	}
	if input.CellSize < 0 || !isFinite(input.CellSize) {
		vb.InvalidField("CellSize", "must be finite and not negative")
	}
	if !isFinite(input.OffsetX) {
		vb.InvalidField("OffsetX", "must be finite")
	}
	if !isFinite(input.OffsetZ) {
		vb.InvalidField("OffsetZ", "must be finite")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := pathfinding.CheckCells(input.Width, input.Height, o.maxCells); err != nil {
		return nil, err
	}

	o.mu.RLock()
	closed := o.closed
	o.mu.RUnlock()
	if closed {
		return nil, errors.Unavailable("navigation service is closed")
	}

	rows, err := buildTerrain(input)
	if err != nil {
		return nil, err
	}

	cellSize := input.CellSize
	if cellSize == 0 {
		cellSize = pathfinding.DefaultCellSize
	}

	now := o.clock.Now()
	data := &levels.LevelData{
		ID:          o.idGen.Generate(),
		Width:       input.Width,
		Height:      input.Height,
		CellSize:    cellSize,
		OffsetX:     input.OffsetX,
		OffsetZ:     input.OffsetZ,
		TerrainRows: rows,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The runtime is built first so a level that cannot run is never stored.
	l, err := newLevel(data, o.maxResults, o.maxCells, o.logger)
	if err != nil {
		return nil, err
	}
	if _, err := o.repo.Save(ctx, &levels.SaveInput{Level: data}); err != nil {
		l.close()
		return nil, errors.Wrap(err, "failed to save level")
	}

	l, err = o.cache(data.ID, l)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Level created",
		"level_id", data.ID,
		"width", data.Width,
		"height", data.Height,
		"hills", len(input.Hills),
		"mountains", len(input.Mountains),
	)

	return &CreateLevelOutput{Level: l.snapshot()}, nil
}

func (o *orchestrator) GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}
	return &GetLevelOutput{Level: l.snapshot()}, nil
}

func (o *orchestrator) DeleteLevel(ctx context.Context, input *DeleteLevelInput) (*DeleteLevelOutput, error) {
	if input == nil || input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	if _, err := o.repo.Delete(ctx, &levels.DeleteInput{LevelID: input.LevelID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete level %s", input.LevelID)
	}

	o.mu.Lock()
	l := o.levels[input.LevelID]
	delete(o.levels, input.LevelID)
	loadedLevels.Set(float64(len(o.levels)))
	o.mu.Unlock()

	if l != nil {
		l.close()
	}

	o.logger.Info("Level deleted", "level_id", input.LevelID)
	return &DeleteLevelOutput{}, nil
}

func (o *orchestrator) ListLevels(ctx context.Context, _ *ListLevelsInput) (*ListLevelsOutput, error) {
	out, err := o.repo.List(ctx, &levels.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}
	return &ListLevelsOutput{LevelIDs: out.LevelIDs}, nil
}

func (o *orchestrator) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}
	return &FindPathOutput{Path: l.pathfinder.FindPath(input.Start, input.End)}, nil
}

func (o *orchestrator) SubmitPathRequest(ctx context.Context, input *SubmitPathRequestInput) (*SubmitPathRequestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RequestID&unitRequestBit != 0 {
		return nil, errors.InvalidArgumentf("request ID %d uses the reserved top bit", input.RequestID)
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}
	if err := l.pathfinder.SubmitPathRequest(input.RequestID, input.Start, input.End); err != nil {
		return nil, errors.Wrapf(err, "failed to submit path request %d", input.RequestID)
	}
	return &SubmitPathRequestOutput{}, nil
}

func (o *orchestrator) FetchCompletedPaths(ctx context.Context, input *FetchCompletedPathsInput) (*FetchCompletedPathsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.drainLocked()
	results := l.callerResults
	l.callerResults = nil
	return &FetchCompletedPathsOutput{Results: results}, nil
}

func (o *orchestrator) SetObstacle(ctx context.Context, input *SetObstacleInput) (*SetObstacleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	width, height := l.pathfinder.Size()
	if input.X < 0 || input.Y < 0 || input.X >= width || input.Y >= height {
		return nil, errors.InvalidArgumentf("cell (%d, %d) is outside the %dx%d grid", input.X, input.Y, width, height)
	}

	l.pathfinder.SetObstacle(input.X, input.Y, input.Blocked)
	return &SetObstacleOutput{}, nil
}

func (o *orchestrator) PlaceBuilding(ctx context.Context, input *PlaceBuildingInput) (*PlaceBuildingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.registry.Register(input.Footprint); err != nil {
		return nil, errors.Wrapf(err, "failed to place building %s", input.Footprint.ID)
	}
	if err := o.persistBuildingsLocked(ctx, l); err != nil {
		_ = l.registry.Unregister(input.Footprint.ID)
		return nil, err
	}

	l.pathfinder.MarkObstaclesDirty()
	o.logger.Info("Building placed",
		"level_id", input.LevelID,
		"building_id", input.Footprint.ID,
	)
	return &PlaceBuildingOutput{}, nil
}

func (o *orchestrator) RemoveBuilding(ctx context.Context, input *RemoveBuildingInput) (*RemoveBuildingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	footprint, ok := l.registry.Get(input.BuildingID)
	if !ok {
		return nil, errors.NotFoundf("building %s not found", input.BuildingID).
			WithMeta("level_id", input.LevelID).
			WithMeta("building_id", input.BuildingID)
	}
	if err := l.registry.Unregister(input.BuildingID); err != nil {
		return nil, err
	}
	if err := o.persistBuildingsLocked(ctx, l); err != nil {
		_ = l.registry.Register(footprint)
		return nil, err
	}

	l.pathfinder.MarkObstaclesDirty()
	o.logger.Info("Building removed",
		"level_id", input.LevelID,
		"building_id", input.BuildingID,
	)
	return &RemoveBuildingOutput{}, nil
}

func (o *orchestrator) persistBuildingsLocked(ctx context.Context, l *level) error {
	data := l.data
	data.Buildings = l.registry.Footprints()
	data.UpdatedAt = o.clock.Now()

	if _, err := o.repo.Save(ctx, &levels.SaveInput{Level: &data}); err != nil {
		return errors.Wrapf(err, "failed to save level %s", data.ID)
	}
	l.data = data
	return nil
}

func (o *orchestrator) RequestUnitMove(ctx context.Context, input *RequestUnitMoveInput) (*RequestUnitMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UnitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	start := l.pathfinder.WorldToGrid(input.Position.X, input.Position.Z)
	end := l.pathfinder.WorldToGrid(input.Target.X, input.Target.Z)

	l.mu.Lock()
	defer l.mu.Unlock()

	if input.AllowDirectFallback && abs(end.X-start.X)+abs(end.Y-start.Y) <= o.directRange {
		l.forgetUnitLocked(input.UnitID)
		unitMoves.WithLabelValues(moveDirect).Inc()
		return &RequestUnitMoveOutput{Direct: true, Target: input.Target}, nil
	}

	requestID := o.requestIDs.Next() | unitRequestBit
	l.forgetUnitLocked(input.UnitID)
	l.unitRequests[requestID] = unitRequest{
		unitID:      input.UnitID,
		position:    input.Position,
		target:      input.Target,
		allowDirect: input.AllowDirectFallback,
	}
	l.unitToRequest[input.UnitID] = requestID

	if err := l.pathfinder.SubmitPathRequest(requestID, start, end); err != nil {
		l.forgetUnitLocked(input.UnitID)
		return nil, errors.Wrapf(err, "failed to queue move for unit %s", input.UnitID)
	}

	unitMoves.WithLabelValues(moveSearch).Inc()
	o.logger.Debug("Unit move queued",
		"level_id", input.LevelID,
		"unit_id", input.UnitID,
		"request_id", requestID,
	)
	return &RequestUnitMoveOutput{RequestID: requestID, Target: input.Target}, nil
}

func (o *orchestrator) CollectUnitPaths(ctx context.Context, input *CollectUnitPathsInput) (*CollectUnitPathsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l, err := o.level(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.drainLocked()
	results := l.unitResults
	l.unitResults = nil

	var routes []UnitRoute
	for _, result := range results {
		req, ok := l.unitRequests[result.RequestID]
		if !ok {
			// Superseded by a newer move or a direct order.
			continue
		}
		delete(l.unitRequests, result.RequestID)
		if l.unitToRequest[req.unitID] == result.RequestID {
			delete(l.unitToRequest, req.unitID)
		}

		position := req.position
		if current, ok := input.Positions[req.unitID]; ok {
			position = current
		}
		routes = append(routes, o.route(l, result, req, position))
	}

	return &CollectUnitPathsOutput{Routes: routes}, nil
}

// route converts a finished search into waypoints. The start cell is
// dropped, as are leading waypoints within the skip radius of the unit.
func (o *orchestrator) route(l *level, result pathfinding.PathResult, req unitRequest, position pathfinding.WorldCell) UnitRoute {
	route := UnitRoute{UnitID: req.unitID, RequestID: result.RequestID}

	if len(result.Path) > 1 {
		waypoints := make([]pathfinding.WorldCell, 0, len(result.Path)-1)
		for _, cell := range result.Path[1:] {
			waypoints = append(waypoints, l.pathfinder.GridToWorld(cell))
		}
		for len(waypoints) > 0 {
			dx := waypoints[0].X - position.X
			dz := waypoints[0].Z - position.Z
			if dx*dx+dz*dz > o.skipRadiusSq {
				break
			}
			waypoints = waypoints[1:]
		}
		if len(waypoints) > 0 {
			route.Waypoints = waypoints
			route.Target = waypoints[0]
			route.HasTarget = true
			unitRoutes.WithLabelValues(routeWaypoints).Inc()
			return route
		}
	}

	if req.allowDirect {
		route.Target = req.target
		route.HasTarget = true
		unitRoutes.WithLabelValues(routeFallback).Inc()
		return route
	}

	unitRoutes.WithLabelValues(routeStop).Inc()
	return route
}

func (o *orchestrator) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	loaded := o.levels
	o.levels = make(map[string]*level)
	loadedLevels.Set(0)
	o.mu.Unlock()

	for id, l := range loaded {
		l.close()
		o.logger.Debug("Level unloaded", "level_id", id)
	}
	return nil
}

// level returns the loaded level, hydrating it from the repository on first
// use.
func (o *orchestrator) level(ctx context.Context, levelID string) (*level, error) {
	if levelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	o.mu.RLock()
	l, ok := o.levels[levelID]
	closed := o.closed
	o.mu.RUnlock()

	if closed {
		return nil, errors.Unavailable("navigation service is closed")
	}
	if ok {
		return l, nil
	}

	out, err := o.repo.Get(ctx, &levels.GetInput{LevelID: levelID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load level %s", levelID)
	}

	l, err = newLevel(out.Level, o.maxResults, o.maxCells, o.logger)
	if err != nil {
		return nil, err
	}
	l, err = o.cache(levelID, l)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Level loaded", "level_id", levelID)
	return l, nil
}

// cache stores a freshly built level. When another caller won the race the
// new level is closed and the cached one returned instead.
func (o *orchestrator) cache(levelID string, l *level) (*level, error) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		l.close()
		return nil, errors.Unavailable("navigation service is closed")
	}
	if existing, ok := o.levels[levelID]; ok {
		o.mu.Unlock()
		l.close()
		return existing, nil
	}
	o.levels[levelID] = l
	loadedLevels.Set(float64(len(o.levels)))
	o.mu.Unlock()

	return l, nil
}

// buildTerrain parses the terrain rows, stamps mountains then hills onto
// them, and returns the rendered rows. Nil means all flat.
func buildTerrain(input *CreateLevelInput) ([]string, error) {
	if len(input.TerrainRows) == 0 && len(input.Hills) == 0 && len(input.Mountains) == 0 {
		return nil, nil
	}

	var (
		heightMap *terrain.HeightMap
		err       error
	)
	if len(input.TerrainRows) > 0 {
		heightMap, err = terrain.ParseRows(input.TerrainRows)
	} else {
		heightMap, err = terrain.NewHeightMap(input.Width, input.Height)
	}
	if err != nil {
		return nil, err
	}

	for i, mountain := range input.Mountains {
		if err := heightMap.AddMountain(mountain); err != nil {
			return nil, errors.Wrapf(err, "invalid mountain %d", i)
		}
	}
	for i, hill := range input.Hills {
		if err := heightMap.AddHill(hill); err != nil {
			return nil, errors.Wrapf(err, "invalid hill %d", i)
		}
	}
	return heightMap.Rows(), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
