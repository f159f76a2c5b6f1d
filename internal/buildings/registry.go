package buildings

import (
	"math"
	"sort"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
)

// Config configures a Registry.
type Config struct {
	// CellSize is the size used to detect overlapping footprints. It should
	// match the pathfinder's cell size.
	CellSize float64

	// AllowOverlap disables the overlap check on Register.
	AllowOverlap bool

	// Bounds, when set, rejects footprints that extend beyond it.
	Bounds *Bounds

	// MaxCells bounds the cells one footprint may cover. Defaults to
	// pathfinding.DefaultMaxCells.
	MaxCells int
}

// Validate checks the cell size.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("CellSize", c.CellSize, vb)
	if c.MaxCells < 0 {
		vb.InvalidField("MaxCells", "must not be negative")
	}
	if c.Bounds != nil && (c.Bounds.MaxX < c.Bounds.MinX || c.Bounds.MaxZ < c.Bounds.MinZ) {
		vb.InvalidField("Bounds", "max must not be below min")
	}
	return vb.Build()
}

type cellKey struct {
	x, z int
}

// Registry is the set of buildings placed on one level. It implements
// pathfinding.BuildingRegistry and is safe for concurrent use.
type Registry struct {
	cellSize     float64
	allowOverlap bool
	bounds       *Bounds
	maxCells     int

	mu         sync.RWMutex
	footprints map[string]Footprint
	occupied   map[cellKey]int
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxCells := cfg.MaxCells
	if maxCells == 0 {
		maxCells = pathfinding.DefaultMaxCells
	}

	var bounds *Bounds
	if cfg.Bounds != nil {
		b := *cfg.Bounds
		bounds = &b
	}

	return &Registry{
		cellSize:     cfg.CellSize,
		allowOverlap: cfg.AllowOverlap,
		bounds:       bounds,
		maxCells:     maxCells,
		footprints:   make(map[string]Footprint),
		occupied:     make(map[cellKey]int),
	}, nil
}

// Register places a building. Footprints outside the bounds or covering
// more than the cell limit fail with InvalidArgument. It fails with
// AlreadyExists for a known id and, unless overlap is allowed, with
// FailedPrecondition when a covered cell is already taken.
func (r *Registry) Register(f Footprint) error {
	if err := f.Validate(); err != nil {
		return errors.Wrap(err, "invalid footprint")
	}
	if r.bounds != nil && !r.bounds.Contains(f.Extent()) {
		return errors.InvalidArgumentf("building %s extends beyond the level", f.ID).
			WithMeta("building_id", f.ID)
	}
	if f.cellCount(r.cellSize) > float64(r.maxCells) {
		return errors.InvalidArgumentf("building %s covers more than %d cells", f.ID, r.maxCells).
			WithMeta("building_id", f.ID)
	}

	keys := r.keys(f)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.footprints[f.ID]; ok {
		return errors.AlreadyExistsf("building %s already registered", f.ID).
			WithMeta("building_id", f.ID)
	}

	if !r.allowOverlap {
		var (
			overlap bool
			hit     cellKey
		)
		keys.Each(func(key cellKey) {
			if !overlap && r.occupied[key] > 0 {
				overlap, hit = true, key
			}
		})
		if overlap {
			return errors.FailedPreconditionf("building %s overlaps an existing building", f.ID).
				WithMeta("building_id", f.ID).
				WithMeta("cell_x", hit.x).
				WithMeta("cell_z", hit.z)
		}
	}

	r.footprints[f.ID] = f
	keys.Each(func(key cellKey) {
		r.occupied[key]++
	})
	return nil
}

// Unregister removes a building. Unknown ids fail with NotFound.
func (r *Registry) Unregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.footprints[id]
	if !ok {
		return errors.NotFoundf("building %s not found", id).WithMeta("building_id", id)
	}

	delete(r.footprints, id)
	r.keys(f).Each(func(key cellKey) {
		if r.occupied[key]--; r.occupied[key] <= 0 {
			delete(r.occupied, key)
		}
	})
	return nil
}

// Get returns the footprint with the given id.
func (r *Registry) Get(id string) (Footprint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.footprints[id]
	return f, ok
}

// Footprints returns every registered footprint ordered by id.
func (r *Registry) Footprints() []Footprint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Footprint, 0, len(r.footprints))
	for _, f := range r.footprints {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Buildings implements pathfinding.BuildingRegistry.
func (r *Registry) Buildings() []pathfinding.Building {
	footprints := r.Footprints()
	out := make([]pathfinding.Building, len(footprints))
	for i, f := range footprints {
		out[i] = f
	}
	return out
}

// keys returns the distinct cells a footprint covers at the registry's cell
// size.
func (r *Registry) keys(f Footprint) mapset.Set[cellKey] {
	keys := mapset.New[cellKey]()
	for _, cell := range f.OccupiedCells(r.cellSize) {
		keys.Put(cellKey{
			x: int(math.Round(cell.X / r.cellSize)),
			z: int(math.Round(cell.Z / r.cellSize)),
		})
	}
	return keys
}
