package pathfinding

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

const (
	// DefaultCellSize is the world-space edge length of one grid cell.
	DefaultCellSize = 1.0

	// DefaultMaxCells bounds Width*Height when Config.MaxCells is zero.
	DefaultMaxCells = 1 << 22
)

// Config holds the dimensions and collaborators of a Pathfinder.
type Config struct {
	Width  int
	Height int

	// CellSize scales world coordinates into grid space. Defaults to
	// DefaultCellSize.
	CellSize float64

	// OffsetX and OffsetZ translate scaled world coordinates into grid
	// indices: grid = round(world/CellSize - offset).
	OffsetX float64
	OffsetZ float64

	// Terrain is optional. Without it every in-grid cell starts walkable.
	Terrain TerrainSource

	// Buildings is optional.
	Buildings BuildingRegistry

	// MaxCells bounds Width*Height. Defaults to DefaultMaxCells.
	MaxCells int

	// MaxPendingResults caps the completed-request queue. When full the
	// oldest unfetched result is dropped. Zero leaves the queue unbounded and
	// callers must poll FetchCompletedPaths.
	MaxPendingResults int

	Logger *slog.Logger
}

// Validate checks dimensions and limits.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if c.Height <= 0 {
		vb.InvalidField("Height", "must be positive")
	}
	if c.CellSize < 0 {
		vb.InvalidField("CellSize", "must not be negative")
	}
	if c.MaxPendingResults < 0 {
		vb.InvalidField("MaxPendingResults", "must not be negative")
	}
	if c.MaxCells < 0 {
		vb.InvalidField("MaxCells", "must not be negative")
	}
	if c.Width > 0 && c.Height > 0 && c.MaxCells >= 0 {
		if err := CheckCells(c.Width, c.Height, c.MaxCells); err != nil {
			vb.Field("Width", errors.GetMessage(err))
		}
	}
	return vb.Build()
}

// CheckCells reports whether a width x height grid fits within maxCells
// without overflowing. A zero maxCells means DefaultMaxCells.
func CheckCells(width, height, maxCells int) error {
	if maxCells == 0 {
		maxCells = DefaultMaxCells
	}
	if width <= 0 || height <= 0 {
		return errors.InvalidArgumentf("grid size %dx%d must be positive", width, height)
	}
	if width > maxCells/height {
		return errors.InvalidArgumentf("grid size %dx%d exceeds %d cells", width, height, maxCells).
			WithMeta("max_cells", maxCells)
	}
	return nil
}

// Pathfinder answers shortest-path queries over one level's grid.
type Pathfinder struct {
	logger            *slog.Logger
	cellSize          float64
	terrain           TerrainSource
	buildings         BuildingRegistry
	maxPendingResults int

	// mu guards the grid, the scratch store, and the offsets.
	mu      sync.Mutex
	grid    *obstacleGrid
	scratch *scratchStore
	offsetX float64
	offsetZ float64

	dirty atomic.Bool

	queueMu sync.Mutex
	queue   []job
	closed  bool
	wake    chan struct{}
	stop    chan struct{}
	done    chan struct{}

	resultMu sync.Mutex
	results  []PathResult
}

// New builds the initial obstacle grid and starts the request worker.
// Call Close to stop the worker.
func New(cfg *Config) (*Pathfinder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cellSize := cfg.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pathfinder{
		logger:            logger.With("component", "pathfinder"),
		cellSize:          cellSize,
		terrain:           cfg.Terrain,
		buildings:         cfg.Buildings,
		maxPendingResults: cfg.MaxPendingResults,
		grid:              newObstacleGrid(cfg.Width, cfg.Height),
		scratch:           newScratchStore(cfg.Width * cfg.Height),
		offsetX:           cfg.OffsetX,
		offsetZ:           cfg.OffsetZ,
		wake:              make(chan struct{}, 1),
		stop:              make(chan struct{}),
		done:              make(chan struct{}),
	}

	p.dirty.Store(true)
	p.UpdateObstacles()

	go p.work()

	return p, nil
}

// Size returns the grid dimensions.
func (p *Pathfinder) Size() (width, height int) {
	return p.grid.width, p.grid.height
}

// CellSize returns the world-space size of one cell.
func (p *Pathfinder) CellSize() float64 {
	return p.cellSize
}

// SetGridOffset changes the world-to-grid translation. Building footprints
// depend on it, so the obstacle grid is marked dirty.
func (p *Pathfinder) SetGridOffset(offsetX, offsetZ float64) {
	p.mu.Lock()
	p.offsetX = offsetX
	p.offsetZ = offsetZ
	p.mu.Unlock()

	p.MarkObstaclesDirty()
}

// GridOffset returns the current world-to-grid translation.
func (p *Pathfinder) GridOffset() (offsetX, offsetZ float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offsetX, p.offsetZ
}

// WorldToGrid converts a world-space position to the nearest cell.
func (p *Pathfinder) WorldToGrid(worldX, worldZ float64) Point {
	offsetX, offsetZ := p.GridOffset()
	x, y := worldToGrid(worldX, worldZ, p.cellSize, offsetX, offsetZ)
	return Point{X: x, Y: y}
}

// GridToWorld converts a cell to its world-space position.
func (p *Pathfinder) GridToWorld(point Point) WorldCell {
	offsetX, offsetZ := p.GridOffset()
	return WorldCell{
		X: (float64(point.X) + offsetX) * p.cellSize,
		Z: (float64(point.Y) + offsetZ) * p.cellSize,
	}
}

// SetObstacle sets a single cell directly. Out-of-range cells are ignored.
// The edit survives until the next rebuild triggered by MarkObstaclesDirty.
func (p *Pathfinder) SetObstacle(x, y int, blocked bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grid.set(x, y, blocked)
}

// IsWalkable reports whether a cell is inside the grid and not blocked.
func (p *Pathfinder) IsWalkable(x, y int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grid.walkable(x, y)
}

// MarkObstaclesDirty schedules a rebuild from the terrain and building
// sources before the next search.
func (p *Pathfinder) MarkObstaclesDirty() {
	p.dirty.Store(true)
}

// UpdateObstacles rebuilds the grid if it is dirty. Concurrent callers
// collapse into a single rebuild.
func (p *Pathfinder) UpdateObstacles() {
	if !p.dirty.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Clearing before reading the sources keeps a mark that arrives during
	// the rebuild.
	if !p.dirty.CompareAndSwap(true, false) {
		return
	}
	p.rebuildLocked()
}

func (p *Pathfinder) rebuildLocked() {
	started := time.Now()

	p.grid.clear()
	if p.terrain != nil {
		p.grid.overlayTerrain(p.terrain)
	}

	buildingCells := 0
	if p.buildings != nil {
		buildingCells = p.grid.overlayBuildings(p.buildings.Buildings(), p.cellSize, p.offsetX, p.offsetZ)
	}

	elapsed := time.Since(started)
	obstacleRebuilds.Inc()
	obstacleRebuildDuration.Observe(elapsed.Seconds())

	p.logger.Debug("Obstacle grid rebuilt",
		"width", p.grid.width,
		"height", p.grid.height,
		"building_cells", buildingCells,
		"duration", elapsed,
	)
}

// FindPath returns the shortest path from start to end, inclusive of both.
// It returns nil when either endpoint is blocked or out of range, or when no
// route is found within width*height iterations. The caller blocks for the
// whole search.
func (p *Pathfinder) FindPath(start, end Point) []Point {
	p.UpdateObstacles()

	p.mu.Lock()
	defer p.mu.Unlock()

	started := time.Now()
	path, stats := p.search(start, end)
	observeSearch(path, stats, time.Since(started))
	return path
}
