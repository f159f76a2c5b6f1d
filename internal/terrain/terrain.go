// Package terrain holds the static walkability of a level: flat ground,
// hills that can only be crossed on their plateau or ramps, and impassable
// mountains.
package terrain

import (
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

// Type is the terrain class of one cell.
type Type uint8

const (
	Flat Type = iota
	Hill
	Mountain
)

func (t Type) String() string {
	switch t {
	case Flat:
		return "flat"
	case Hill:
		return "hill"
	case Mountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Cell glyphs used by ParseRows and Rows.
const (
	GlyphFlat     = '.'
	GlyphSlope    = '^' // hill, not walkable
	GlyphPlateau  = '=' // hill, walkable
	GlyphEntrance = 'E' // hill, walkable, entrance
	GlyphMountain = 'M'
)

// HeightMap is a width x height terrain grid. It is safe for concurrent use.
type HeightMap struct {
	width  int
	height int

	mu           sync.RWMutex
	types        []Type
	hillWalkable []bool
	entrances    mapset.Set[int]
}

// NewHeightMap returns an all-flat map.
func NewHeightMap(width, height int) (*HeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("terrain size %dx%d must be positive", width, height)
	}

	return &HeightMap{
		width:        width,
		height:       height,
		types:        make([]Type, width*height),
		hillWalkable: make([]bool, width*height),
		entrances:    mapset.New[int](),
	}, nil
}

// ParseRows builds a map from rows of glyphs; row i is y = i. Every row must
// have the same length.
func ParseRows(rows []string) (*HeightMap, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidArgument("terrain rows are required")
	}

	m, err := NewHeightMap(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != m.width {
			return nil, errors.InvalidArgumentf("terrain row %d has length %d, want %d", y, len(row), m.width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case GlyphFlat:
			case GlyphSlope:
				m.SetCell(x, y, Hill, false)
			case GlyphPlateau:
				m.SetCell(x, y, Hill, true)
			case GlyphEntrance:
				m.SetCell(x, y, Hill, true)
				m.MarkEntrance(x, y)
			case GlyphMountain:
				m.SetCell(x, y, Mountain, false)
			default:
				return nil, errors.InvalidArgumentf("unknown terrain glyph %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return m, nil
}

// Size returns the map dimensions.
func (m *HeightMap) Size() (width, height int) {
	return m.width, m.height
}

// SetCell sets the type of one cell. walkable only matters for hills.
// Out-of-range cells are ignored. Changing a cell away from Hill clears its
// entrance mark; entrances stay walkable otherwise.
func (m *HeightMap) SetCell(x, y int, t Type, walkable bool) {
	if !m.inBounds(x, y) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(x, y)
	m.types[i] = t
	if t != Hill {
		m.hillWalkable[i] = false
		m.entrances.Remove(i)
		return
	}
	m.hillWalkable[i] = walkable || m.entrances.Has(i)
}

// MarkEntrance makes a hill cell an entrance. Entrances are always walkable.
// Cells that are not hills are left unchanged.
func (m *HeightMap) MarkEntrance(x, y int) {
	if !m.inBounds(x, y) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(x, y)
	if m.types[i] != Hill {
		return
	}
	m.hillWalkable[i] = true
	m.entrances.Put(i)
}

// TypeAt returns the terrain type, Flat when out of range.
func (m *HeightMap) TypeAt(x, y int) Type {
	if !m.inBounds(x, y) {
		return Flat
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.types[m.index(x, y)]
}

// IsWalkable reports whether a unit may stand on the cell. Out-of-range
// cells and mountains are never walkable; hills only on plateau, ramp or
// entrance cells.
func (m *HeightMap) IsWalkable(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.index(x, y)
	switch m.types[i] {
	case Mountain:
		return false
	case Hill:
		return m.hillWalkable[i]
	default:
		return true
	}
}

// Rows renders the map with the ParseRows glyphs.
func (m *HeightMap) Rows() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]string, m.height)
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		b.Reset()
		for x := 0; x < m.width; x++ {
			b.WriteByte(m.glyphLocked(m.index(x, y)))
		}
		rows[y] = b.String()
	}
	return rows
}

func (m *HeightMap) glyphLocked(i int) byte {
	switch m.types[i] {
	case Mountain:
		return GlyphMountain
	case Hill:
		switch {
		case m.entrances.Has(i):
			return GlyphEntrance
		case m.hillWalkable[i]:
			return GlyphPlateau
		default:
			return GlyphSlope
		}
	default:
		return GlyphFlat
	}
}

func (m *HeightMap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *HeightMap) index(x, y int) int {
	return y*m.width + x
}
