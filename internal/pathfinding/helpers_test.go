package pathfinding_test

import (
	"sync"

	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
)

type fakeTerrain struct {
	mu      sync.Mutex
	width   int
	height  int
	blocked map[pathfinding.Point]bool
}

func newFakeTerrain(width, height int) *fakeTerrain {
	return &fakeTerrain{width: width, height: height, blocked: make(map[pathfinding.Point]bool)}
}

func (t *fakeTerrain) Size() (int, int) {
	return t.width, t.height
}

func (t *fakeTerrain) IsWalkable(x, y int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.blocked[pathfinding.Point{X: x, Y: y}]
}

func (t *fakeTerrain) block(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.blocked[pathfinding.Point{X: x, Y: y}] = true
}

type fakeBuilding []pathfinding.WorldCell

func (b fakeBuilding) OccupiedCells(float64) []pathfinding.WorldCell {
	return b
}

type fakeRegistry struct {
	mu        sync.Mutex
	buildings []pathfinding.Building
}

func (r *fakeRegistry) Buildings() []pathfinding.Building {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pathfinding.Building(nil), r.buildings...)
}

func (r *fakeRegistry) set(buildings ...pathfinding.Building) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildings = buildings
}

// bfsLength returns the number of cells on a shortest 8-way path that never
// cuts a corner, or -1 when end is unreachable.
func bfsLength(blocked [][]bool, start, end pathfinding.Point) int {
	height := len(blocked)
	width := len(blocked[0])
	open := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < width && y < height && !blocked[y][x]
	}
	if !open(start.X, start.Y) || !open(end.X, end.Y) {
		return -1
	}

	dist := map[pathfinding.Point]int{start: 1}
	queue := []pathfinding.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			return dist[current]
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := pathfinding.Point{X: current.X + dx, Y: current.Y + dy}
				if !open(next.X, next.Y) {
					continue
				}
				if dx != 0 && dy != 0 && (!open(current.X+dx, current.Y) || !open(current.X, current.Y+dy)) {
					continue
				}
				if _, seen := dist[next]; seen {
					continue
				}
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return -1
}
