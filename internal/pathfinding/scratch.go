package pathfinding

import "math"

const (
	infiniteCost = math.MaxInt
	noParent     = -1
)

// scratchStore holds per-cell search state. Every value is paired with the
// generation that wrote it; a value stamped with another generation reads as
// unset, so starting a new search only bumps the counter.
type scratchStore struct {
	generation uint32

	closedGen []uint32
	gCostGen  []uint32
	gCosts    []int
	parentGen []uint32
	parents   []int
}

func newScratchStore(cells int) *scratchStore {
	s := &scratchStore{
		closedGen: make([]uint32, cells),
		gCostGen:  make([]uint32, cells),
		gCosts:    make([]int, cells),
		parentGen: make([]uint32, cells),
		parents:   make([]int, cells),
	}
	s.reset()
	return s
}

// nextGeneration starts a new search. On wrap-around every array is cleared
// so no stamp from the previous cycle can match again.
func (s *scratchStore) nextGeneration() uint32 {
	s.generation++
	if s.generation == 0 {
		s.reset()
		s.generation = 1
	}
	return s.generation
}

func (s *scratchStore) reset() {
	clear(s.closedGen)
	clear(s.gCostGen)
	clear(s.parentGen)
	for i := range s.gCosts {
		s.gCosts[i] = infiniteCost
	}
	for i := range s.parents {
		s.parents[i] = noParent
	}
	s.generation = 0
}

func (s *scratchStore) inRange(index int) bool {
	return index >= 0 && index < len(s.closedGen)
}

func (s *scratchStore) isClosed(index int, generation uint32) bool {
	return s.inRange(index) && s.closedGen[index] == generation
}

func (s *scratchStore) setClosed(index int, generation uint32) {
	if s.inRange(index) {
		s.closedGen[index] = generation
	}
}

func (s *scratchStore) gCost(index int, generation uint32) int {
	if !s.inRange(index) || s.gCostGen[index] != generation {
		return infiniteCost
	}
	return s.gCosts[index]
}

func (s *scratchStore) setGCost(index int, generation uint32, cost int) {
	if s.inRange(index) {
		s.gCostGen[index] = generation
		s.gCosts[index] = cost
	}
}

func (s *scratchStore) parent(index int, generation uint32) int {
	if !s.inRange(index) || s.parentGen[index] != generation {
		return noParent
	}
	return s.parents[index]
}

func (s *scratchStore) setParent(index int, generation uint32, parent int) {
	if s.inRange(index) {
		s.parentGen[index] = generation
		s.parents[index] = parent
	}
}
