package terrain

import (
	"math"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

// HillFeature describes a round hill: a walkable plateau ringed by an unwalkable
// slope, crossed by ramps running from each entrance to the plateau.
type HillFeature struct {
	CenterX   int
	CenterY   int
	Radius    float64
	Entrances [][2]int
}

// MountainFeature is a round block of impassable cells.
type MountainFeature struct {
	CenterX int
	CenterY int
	Radius  float64
}

// minPlateauRadius keeps small hills climbable.
const minPlateauRadius = 1.5

// AddHill stamps a hill onto the map. Mountains are never overwritten.
// Cells within the plateau radius become walkable hill, the rest of the
// radius becomes slope, and a ramp of orthogonal steps is cut from every
// entrance toward the centre. The centre and entrances must lie on the map.
func (m *HeightMap) AddHill(h HillFeature) error {
	if err := m.checkFeature("hill", h.CenterX, h.CenterY, h.Radius); err != nil {
		return err
	}
	for _, entrance := range h.Entrances {
		if !m.inBounds(entrance[0], entrance[1]) {
			return errors.InvalidArgumentf("hill entrance (%d, %d) is outside the %dx%d map",
				entrance[0], entrance[1], m.width, m.height)
		}
	}

	plateau := math.Max(minPlateauRadius, h.Radius*0.45)
	m.eachWithin(h.CenterX, h.CenterY, h.Radius, func(x, y int, dist float64) {
		if m.TypeAt(x, y) == Mountain {
			return
		}
		m.SetCell(x, y, Hill, dist <= plateau)
	})

	for _, entrance := range h.Entrances {
		m.cutRamp(entrance[0], entrance[1], h.CenterX, h.CenterY, plateau)
	}
	return nil
}

// AddMountain blocks every cell within radius of the centre.
func (m *HeightMap) AddMountain(f MountainFeature) error {
	if err := m.checkFeature("mountain", f.CenterX, f.CenterY, f.Radius); err != nil {
		return err
	}

	m.eachWithin(f.CenterX, f.CenterY, f.Radius, func(x, y int, _ float64) {
		m.SetCell(x, y, Mountain, false)
	})
	return nil
}

func (m *HeightMap) checkFeature(kind string, centerX, centerY int, radius float64) error {
	if !m.inBounds(centerX, centerY) {
		return errors.InvalidArgumentf("%s centre (%d, %d) is outside the %dx%d map",
			kind, centerX, centerY, m.width, m.height)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return errors.InvalidArgumentf("%s radius %v must be positive and finite", kind, radius)
	}
	return nil
}

// eachWithin calls fn for every on-map cell within radius of the centre.
func (m *HeightMap) eachWithin(centerX, centerY int, radius float64, fn func(x, y int, dist float64)) {
	minX := max(0, int(math.Max(-1, math.Ceil(float64(centerX)-radius))))
	maxX := min(m.width-1, int(math.Min(float64(m.width), math.Floor(float64(centerX)+radius))))
	minY := max(0, int(math.Max(-1, math.Ceil(float64(centerY)-radius))))
	maxY := min(m.height-1, int(math.Min(float64(m.height), math.Floor(float64(centerY)+radius))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dist := math.Hypot(float64(x-centerX), float64(y-centerY))
			if dist <= radius {
				fn(x, y, dist)
			}
		}
	}
}

// cutRamp walks from an on-map entrance toward an on-map centre, so every
// step stays on the map.
func (m *HeightMap) cutRamp(fromX, fromY, toX, toY int, plateau float64) {
	if m.TypeAt(fromX, fromY) == Mountain {
		return
	}
	m.SetCell(fromX, fromY, Hill, true)
	m.MarkEntrance(fromX, fromY)

	x, y := fromX, fromY
	for {
		if math.Hypot(float64(x-toX), float64(y-toY)) <= plateau {
			return
		}
		if abs(toX-x) >= abs(toY-y) {
			x += sign(toX - x)
		} else {
			y += sign(toY - y)
		}
		if m.TypeAt(x, y) == Mountain {
			return
		}
		m.SetCell(x, y, Hill, true)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
