// Package buildings tracks the rectangular footprints of placed buildings so
// the pathfinder can block the cells they cover.
package buildings

import (
	"math"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
)

// Footprint is an axis-aligned rectangle in world space centred on
// (CenterX, CenterZ).
type Footprint struct {
	ID      string  `json:"id"`
	CenterX float64 `json:"center_x"`
	CenterZ float64 `json:"center_z"`
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
}

// Validate checks the id and dimensions.
func (f *Footprint) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", f.ID, vb)
	errors.ValidatePositive("Width", f.Width, vb)
	errors.ValidatePositive("Depth", f.Depth, vb)
	for field, v := range map[string]float64{
		"CenterX": f.CenterX,
		"CenterZ": f.CenterZ,
		"Width":   f.Width,
		"Depth":   f.Depth,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			vb.InvalidField(field, "must be finite")
		}
	}
	return vb.Build()
}

// Bounds is an axis-aligned world-space rectangle.
type Bounds struct {
	MinX float64
	MinZ float64
	MaxX float64
	MaxZ float64
}

// boundsEpsilon absorbs rounding when a footprint edge sits on a bound.
const boundsEpsilon = 1e-9

// Contains reports whether inner lies entirely within b.
func (b Bounds) Contains(inner Bounds) bool {
	return inner.MinX >= b.MinX-boundsEpsilon &&
		inner.MinZ >= b.MinZ-boundsEpsilon &&
		inner.MaxX <= b.MaxX+boundsEpsilon &&
		inner.MaxZ <= b.MaxZ+boundsEpsilon
}

// Extent returns the rectangle the footprint covers.
func (f Footprint) Extent() Bounds {
	return Bounds{
		MinX: f.CenterX - f.Width/2,
		MinZ: f.CenterZ - f.Depth/2,
		MaxX: f.CenterX + f.Width/2,
		MaxZ: f.CenterZ + f.Depth/2,
	}
}

// cellCount is the number of cells OccupiedCells would return, computed in
// floating point so oversized footprints can be rejected before allocating.
func (f Footprint) cellCount(cellSize float64) float64 {
	span := func(center, size float64) float64 {
		lo := math.Ceil((center - size/2) / cellSize)
		hi := math.Floor((center + size/2) / cellSize)
		return math.Max(hi-lo+1, 1)
	}
	return span(f.CenterX, f.Width) * span(f.CenterZ, f.Depth)
}

// OccupiedCells returns the world-space centres of the cells of size
// cellSize whose centre lies inside the footprint. A footprint narrower than
// a cell still occupies the cell nearest its centre on that axis.
func (f Footprint) OccupiedCells(cellSize float64) []pathfinding.WorldCell {
	if cellSize <= 0 {
		return nil
	}

	minX, maxX := cellSpan(f.CenterX, f.Width, cellSize)
	minZ, maxZ := cellSpan(f.CenterZ, f.Depth, cellSize)

	cells := make([]pathfinding.WorldCell, 0, (maxX-minX+1)*(maxZ-minZ+1))
	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			cells = append(cells, pathfinding.WorldCell{
				X: float64(x) * cellSize,
				Z: float64(z) * cellSize,
			})
		}
	}
	return cells
}

// cellSpan returns the inclusive range of cell indices whose centre falls
// within [center-size/2, center+size/2].
func cellSpan(center, size, cellSize float64) (lo, hi int) {
	half := size / 2
	lo = int(math.Ceil((center - half) / cellSize))
	hi = int(math.Floor((center + half) / cellSize))
	if lo > hi {
		nearest := int(math.Round(center / cellSize))
		return nearest, nearest
	}
	return lo, hi
}
