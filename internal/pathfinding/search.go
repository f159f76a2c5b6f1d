package pathfinding

import (
	"github.com/zyedidia/generic/heap"
)

// moveCost is charged for every step, orthogonal or diagonal.
const moveCost = 1

type openEntry struct {
	index int
	fCost int
	gCost int
}

// openLess orders by estimate, preferring the cheaper-so-far entry on ties.
func openLess(a, b openEntry) bool {
	if a.fCost != b.fCost {
		return a.fCost < b.fCost
	}
	return a.gCost < b.gCost
}

type searchStats struct {
	iterations int
	expanded   int
}

// heuristic is the Chebyshev distance. With every step costing one, a
// diagonal covers both axes at once, so this is the exact cost on an open
// grid and never overestimates.
func heuristic(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// search runs A* over the obstacle grid. Callers must hold the pathfinder
// mutex.
func (p *Pathfinder) search(start, end Point) ([]Point, searchStats) {
	var stats searchStats

	if !p.grid.walkable(start.X, start.Y) || !p.grid.walkable(end.X, end.Y) {
		return nil, stats
	}

	startIdx := p.grid.index(start.X, start.Y)
	endIdx := p.grid.index(end.X, end.Y)
	if startIdx == endIdx {
		return []Point{start}, stats
	}

	generation := p.scratch.nextGeneration()
	open := heap.New[openEntry](openLess)

	p.scratch.setGCost(startIdx, generation, 0)
	p.scratch.setParent(startIdx, generation, startIdx)
	open.Push(openEntry{index: startIdx, fCost: heuristic(start, end), gCost: 0})

	maxIterations := max(p.grid.width*p.grid.height, 1)
	finalCost := -1

	var neighbors [8]Point
	for open.Size() > 0 && stats.iterations < maxIterations {
		stats.iterations++

		current, _ := open.Pop()
		if current.gCost > p.scratch.gCost(current.index, generation) {
			continue
		}
		if p.scratch.isClosed(current.index, generation) {
			continue
		}
		p.scratch.setClosed(current.index, generation)
		stats.expanded++

		if current.index == endIdx {
			finalCost = current.gCost
			break
		}

		count := p.collectNeighbors(p.grid.point(current.index), &neighbors)
		for _, neighbor := range neighbors[:count] {
			neighborIdx := p.grid.index(neighbor.X, neighbor.Y)
			if p.scratch.isClosed(neighborIdx, generation) {
				continue
			}

			tentative := current.gCost + moveCost
			if tentative >= p.scratch.gCost(neighborIdx, generation) {
				continue
			}

			p.scratch.setGCost(neighborIdx, generation, tentative)
			p.scratch.setParent(neighborIdx, generation, current.index)
			open.Push(openEntry{
				index: neighborIdx,
				fCost: tentative + heuristic(neighbor, end),
				gCost: tentative,
			})
		}
	}

	if finalCost < 0 {
		return nil, stats
	}
	return p.buildPath(startIdx, endIdx, generation, finalCost+1), stats
}

// collectNeighbors writes the walkable 8-neighbours of point into buffer.
// A diagonal step is admitted only when both cells it passes between are
// walkable.
func (p *Pathfinder) collectNeighbors(point Point, buffer *[8]Point) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := point.X + dx
			y := point.Y + dy
			if !p.grid.walkable(x, y) {
				continue
			}
			if dx != 0 && dy != 0 {
				if !p.grid.walkable(point.X+dx, point.Y) || !p.grid.walkable(point.X, point.Y+dy) {
					continue
				}
			}
			buffer[count] = Point{X: x, Y: y}
			count++
		}
	}
	return count
}

// buildPath follows parent links from end back to start. A broken chain
// yields nil rather than a partial path.
func (p *Pathfinder) buildPath(startIdx, endIdx int, generation uint32, expectedLength int) []Point {
	path := make([]Point, 0, expectedLength)
	limit := len(p.grid.blocked)

	current := endIdx
	for steps := 0; steps <= limit; steps++ {
		path = append(path, p.grid.point(current))
		if current == startIdx {
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		parent := p.scratch.parent(current, generation)
		if parent == noParent || parent == current {
			return nil
		}
		current = parent
	}
	return nil
}
