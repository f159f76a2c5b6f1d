package pathfinding_test

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	pathfindingmock "github.com/Esderin/Standard-of-Iron/internal/pathfinding/mock"
)

type PathfinderTestSuite struct {
	suite.Suite
}

func TestPathfinderSuite(t *testing.T) {
	suite.Run(t, new(PathfinderTestSuite))
}

func (s *PathfinderTestSuite) newPathfinder(cfg *pathfinding.Config) *pathfinding.Pathfinder {
	p, err := pathfinding.New(cfg)
	s.Require().NoError(err)
	s.T().Cleanup(p.Close)
	return p
}

// fromRows builds a pathfinder where '#' marks a blocked cell.
func (s *PathfinderTestSuite) fromRows(rows ...string) *pathfinding.Pathfinder {
	p := s.newPathfinder(&pathfinding.Config{Width: len(rows[0]), Height: len(rows)})
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				p.SetObstacle(x, y, true)
			}
		}
	}
	return p
}

func (s *PathfinderTestSuite) assertValidPath(p *pathfinding.Pathfinder, path []pathfinding.Point, start, end pathfinding.Point) {
	s.Require().NotEmpty(path)
	s.Equal(start, path[0])
	s.Equal(end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		dx, dy := cur.X-prev.X, cur.Y-prev.Y
		s.True(dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0),
			"step %v -> %v is not an 8-neighbour move", prev, cur)
		s.True(p.IsWalkable(cur.X, cur.Y), "path crosses blocked cell %v", cur)
		if dx != 0 && dy != 0 {
			s.True(p.IsWalkable(prev.X+dx, prev.Y) && p.IsWalkable(prev.X, prev.Y+dy),
				"diagonal %v -> %v cuts a corner", prev, cur)
		}
	}
}

func (s *PathfinderTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *pathfinding.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "zero width", cfg: &pathfinding.Config{Width: 0, Height: 4}},
		{name: "negative height", cfg: &pathfinding.Config{Width: 4, Height: -1}},
		{name: "negative cell size", cfg: &pathfinding.Config{Width: 4, Height: 4, CellSize: -2}},
		{name: "negative result cap", cfg: &pathfinding.Config{Width: 4, Height: 4, MaxPendingResults: -1}},
		{name: "negative cell limit", cfg: &pathfinding.Config{Width: 4, Height: 4, MaxCells: -1}},
		{name: "over cell limit", cfg: &pathfinding.Config{Width: 5, Height: 4, MaxCells: 19}},
		{name: "over default cell limit", cfg: &pathfinding.Config{Width: 4096, Height: 4096}},
		{name: "overflowing dimensions", cfg: &pathfinding.Config{Width: math.MaxInt, Height: math.MaxInt}},
		{name: "max int32 dimensions", cfg: &pathfinding.Config{Width: math.MaxInt32, Height: math.MaxInt32}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := pathfinding.New(tc.cfg)
			s.Nil(p)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *PathfinderTestSuite) TestCellLimit() {
	p := s.newPathfinder(&pathfinding.Config{Width: 5, Height: 4, MaxCells: 20})
	width, height := p.Size()
	s.Equal(20, width*height)

	s.NoError(pathfinding.CheckCells(2048, 2048, 0))
	err := pathfinding.CheckCells(2049, 2048, 0)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(pathfinding.DefaultMaxCells, errors.GetMeta(err)["max_cells"])
	s.True(errors.IsInvalidArgument(pathfinding.CheckCells(0, 5, 0)))
}

func (s *PathfinderTestSuite) TestFindPath_OpenGridTakesDiagonal() {
	p := s.fromRows(
		".....",
		".....",
		".....",
		".....",
		".....",
	)

	path := p.FindPath(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 4, Y: 4})

	s.Len(path, 5)
	s.assertValidPath(p, path, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 4, Y: 4})
}

func (s *PathfinderTestSuite) TestFindPath_BlockedColumnForcesGap() {
	p := s.fromRows(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	start := pathfinding.Point{X: 0, Y: 0}
	end := pathfinding.Point{X: 4, Y: 4}
	path := p.FindPath(start, end)

	s.assertValidPath(p, path, start, end)
	s.Contains(path, pathfinding.Point{X: 2, Y: 4})
}

func (s *PathfinderTestSuite) TestFindPath_SamePoint() {
	p := s.fromRows("...", "...")

	s.Equal([]pathfinding.Point{{X: 1, Y: 1}}, p.FindPath(pathfinding.Point{X: 1, Y: 1}, pathfinding.Point{X: 1, Y: 1}))
}

func (s *PathfinderTestSuite) TestFindPath_InvalidEndpoints() {
	p := s.fromRows(
		"..#",
		"...",
	)

	testCases := []struct {
		name  string
		start pathfinding.Point
		end   pathfinding.Point
	}{
		{name: "blocked end", start: pathfinding.Point{X: 0, Y: 0}, end: pathfinding.Point{X: 2, Y: 0}},
		{name: "blocked start", start: pathfinding.Point{X: 2, Y: 0}, end: pathfinding.Point{X: 0, Y: 0}},
		{name: "start out of range", start: pathfinding.Point{X: -1, Y: 0}, end: pathfinding.Point{X: 0, Y: 1}},
		{name: "end out of range", start: pathfinding.Point{X: 0, Y: 0}, end: pathfinding.Point{X: 3, Y: 1}},
		{name: "same blocked point", start: pathfinding.Point{X: 2, Y: 0}, end: pathfinding.Point{X: 2, Y: 0}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Empty(p.FindPath(tc.start, tc.end))
		})
	}
}

func (s *PathfinderTestSuite) TestFindPath_DisconnectedRegions() {
	p := s.fromRows(
		"...#...",
		"...#...",
		"...#...",
	)

	s.Empty(p.FindPath(pathfinding.Point{X: 0, Y: 1}, pathfinding.Point{X: 6, Y: 1}))
}

func (s *PathfinderTestSuite) TestFindPath_NoCornerCutting() {
	p := s.fromRows(
		".#.",
		"#..",
		"...",
	)

	s.Empty(p.FindPath(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 1, Y: 1}))
}

func (s *PathfinderTestSuite) TestFindPath_MatchesBreadthFirstSearch() {
	const width, height = 14, 11
	p := s.newPathfinder(&pathfinding.Config{Width: width, Height: height})

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))

		blocked := make([][]bool, height)
		for y := range blocked {
			blocked[y] = make([]bool, width)
			for x := range blocked[y] {
				blocked[y][x] = rng.Float64() < 0.28
				p.SetObstacle(x, y, blocked[y][x])
			}
		}

		for query := 0; query < 10; query++ {
			start := pathfinding.Point{X: rng.Intn(width), Y: rng.Intn(height)}
			end := pathfinding.Point{X: rng.Intn(width), Y: rng.Intn(height)}

			expected := bfsLength(blocked, start, end)
			path := p.FindPath(start, end)

			if expected < 0 {
				s.Empty(path, "seed %d: %v -> %v should be unreachable", seed, start, end)
				continue
			}
			s.Len(path, expected, "seed %d: %v -> %v", seed, start, end)
			s.assertValidPath(p, path, start, end)
		}
	}
}

func (s *PathfinderTestSuite) TestFindPath_ShortestWhereManhattanOverestimates() {
	p := s.fromRows(
		"...#..........",
		".#.........#..",
		"....#..#....#.",
		".#..#.#...#...",
		"#.............",
		"##...#........",
		".#...........#",
		"....#.##...##.",
		"#....#......##",
		".###..#.###..#",
		".##.#....#..#.",
	)
	start := pathfinding.Point{X: 4, Y: 1}
	end := pathfinding.Point{X: 9, Y: 7}

	path := p.FindPath(start, end)
	s.Len(path, 9)
	s.assertValidPath(p, path, start, end)
}

func (s *PathfinderTestSuite) TestSetObstacle_VisibleToNextSearch() {
	p := s.fromRows(
		".....",
		".....",
		".....",
	)
	start := pathfinding.Point{X: 0, Y: 1}
	end := pathfinding.Point{X: 4, Y: 1}

	before := p.FindPath(start, end)
	s.Contains(before, pathfinding.Point{X: 2, Y: 1})

	p.SetObstacle(2, 1, true)
	after := p.FindPath(start, end)

	s.assertValidPath(p, after, start, end)
	s.NotContains(after, pathfinding.Point{X: 2, Y: 1})
	s.False(p.IsWalkable(2, 1))

	p.SetObstacle(2, 1, false)
	s.True(p.IsWalkable(2, 1))
}

func (s *PathfinderTestSuite) TestSetObstacle_OutOfRangeIgnored() {
	p := s.fromRows("...")

	s.NotPanics(func() {
		p.SetObstacle(-1, 0, true)
		p.SetObstacle(3, 0, true)
		p.SetObstacle(0, 1, true)
	})
	s.False(p.IsWalkable(-1, 0))
	s.False(p.IsWalkable(0, 5))
	s.True(p.IsWalkable(0, 0))
}

func (s *PathfinderTestSuite) TestMarkObstaclesDirty_RebuildsFromSources() {
	terrain := newFakeTerrain(5, 3)
	buildings := &fakeRegistry{}
	p := s.newPathfinder(&pathfinding.Config{
		Width:     5,
		Height:    3,
		Terrain:   terrain,
		Buildings: buildings,
	})
	start := pathfinding.Point{X: 0, Y: 1}
	end := pathfinding.Point{X: 4, Y: 1}

	s.Len(p.FindPath(start, end), 5)

	// Terrain changes are invisible until the grid is marked dirty.
	terrain.block(2, 0)
	terrain.block(2, 1)
	s.Len(p.FindPath(start, end), 5)
	s.True(p.IsWalkable(2, 1))

	p.MarkObstaclesDirty()
	path := p.FindPath(start, end)
	s.assertValidPath(p, path, start, end)
	s.Contains(path, pathfinding.Point{X: 2, Y: 2})

	buildings.set(fakeBuilding{{X: 2, Z: 2}})
	p.MarkObstaclesDirty()
	s.Empty(p.FindPath(start, end))
	s.False(p.IsWalkable(2, 2))
}

func (s *PathfinderTestSuite) TestConcurrentSearchesShareOneRebuild() {
	ctrl := gomock.NewController(s.T())
	terrain := pathfindingmock.NewMockTerrainSource(ctrl)

	// Once in New, once for the single mark below.
	terrain.EXPECT().Size().Return(8, 8).Times(2)
	terrain.EXPECT().IsWalkable(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	p := s.newPathfinder(&pathfinding.Config{Width: 8, Height: 8, Terrain: terrain})
	p.MarkObstaclesDirty()

	const callers = 16
	lengths := make([]int, callers)
	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-release
			lengths[i] = len(p.FindPath(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 7, Y: 3}))
		}(i)
	}
	close(release)
	wg.Wait()

	for i, length := range lengths {
		s.Equal(8, length, "caller %d", i)
	}
}

func (s *PathfinderTestSuite) TestRebuildDiscardsDirectEdits() {
	p := s.newPathfinder(&pathfinding.Config{Width: 3, Height: 3, Terrain: newFakeTerrain(3, 3)})

	p.SetObstacle(1, 1, true)
	s.False(p.IsWalkable(1, 1))

	p.MarkObstaclesDirty()
	p.UpdateObstacles()
	s.True(p.IsWalkable(1, 1))
}

func (s *PathfinderTestSuite) TestCellsOutsideTerrainAreBlocked() {
	p := s.newPathfinder(&pathfinding.Config{Width: 6, Height: 4, Terrain: newFakeTerrain(4, 3)})

	s.True(p.IsWalkable(3, 2))
	s.False(p.IsWalkable(4, 0))
	s.False(p.IsWalkable(0, 3))
	s.Empty(p.FindPath(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 5, Y: 3}))
}

func (s *PathfinderTestSuite) TestBuildingFootprintsUseCellSizeAndOffset() {
	ctrl := gomock.NewController(s.T())
	terrain := pathfindingmock.NewMockTerrainSource(ctrl)
	registry := pathfindingmock.NewMockBuildingRegistry(ctrl)
	building := pathfindingmock.NewMockBuilding(ctrl)

	terrain.EXPECT().Size().Return(10, 10).AnyTimes()
	terrain.EXPECT().IsWalkable(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	registry.EXPECT().Buildings().Return([]pathfinding.Building{building}).AnyTimes()
	building.EXPECT().OccupiedCells(2.0).Return([]pathfinding.WorldCell{
		{X: -4, Z: -4},   // (-2 + 5, -2 + 5) = (3, 3)
		{X: 2.8, Z: 0.2}, // round(1.4 + 5, 0.1 + 5) = (6, 5)
		{X: 40, Z: 40},   // off grid
	}).AnyTimes()

	p := s.newPathfinder(&pathfinding.Config{
		Width:     10,
		Height:    10,
		CellSize:  2,
		OffsetX:   -5,
		OffsetZ:   -5,
		Terrain:   terrain,
		Buildings: registry,
	})

	s.False(p.IsWalkable(3, 3))
	s.False(p.IsWalkable(6, 5))
	s.True(p.IsWalkable(4, 4))

	p.SetGridOffset(-4, -4)
	p.UpdateObstacles()
	s.True(p.IsWalkable(3, 3))
	s.False(p.IsWalkable(2, 2))
}

func (s *PathfinderTestSuite) TestWorldGridConversion() {
	p := s.newPathfinder(&pathfinding.Config{Width: 20, Height: 20, CellSize: 2, OffsetX: -10, OffsetZ: -5})

	s.Equal(pathfinding.Point{X: 10, Y: 5}, p.WorldToGrid(0, 0))
	s.Equal(pathfinding.Point{X: 12, Y: 4}, p.WorldToGrid(4.4, -1.6))

	world := p.GridToWorld(pathfinding.Point{X: 12, Y: 4})
	s.InDelta(4.0, world.X, 1e-9)
	s.InDelta(-2.0, world.Z, 1e-9)
	s.Equal(pathfinding.Point{X: 12, Y: 4}, p.WorldToGrid(world.X, world.Z))

	offsetX, offsetZ := p.GridOffset()
	s.Equal(-10.0, offsetX)
	s.Equal(-5.0, offsetZ)
}

func (s *PathfinderTestSuite) TestFindPathAsync() {
	p := s.fromRows(
		"....",
		".##.",
		"....",
	)

	future, err := p.FindPathAsync(pathfinding.Point{X: 0, Y: 1}, pathfinding.Point{X: 3, Y: 1})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	path, err := future.Wait(ctx)
	s.Require().NoError(err)
	s.assertValidPath(p, path, pathfinding.Point{X: 0, Y: 1}, pathfinding.Point{X: 3, Y: 1})
	s.Len(path, 4)

	select {
	case <-future.Done():
	default:
		s.Fail("future should report done after Wait returns")
	}
}

func (s *PathfinderTestSuite) TestSubmitPathRequest_ConcurrentDistinctIDs() {
	p := s.fromRows(
		"..........",
		"..#####...",
		"..........",
		"...####...",
		"..........",
	)

	const submitters = 8
	const perSubmitter = 25

	var wg sync.WaitGroup
	for g := 0; g < submitters; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perSubmitter; i++ {
				id := uint64(g*perSubmitter + i + 1)
				err := p.SubmitPathRequest(id, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 9, Y: 4})
				s.NoError(err)
			}
		}(g)
	}

	seen := make(map[uint64]int)
	var mu sync.Mutex
	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		deadline := time.After(10 * time.Second)
		for {
			for _, result := range p.FetchCompletedPaths() {
				mu.Lock()
				seen[result.RequestID]++
				mu.Unlock()
				s.NotEmpty(result.Path)
			}
			mu.Lock()
			complete := len(seen) == submitters*perSubmitter
			mu.Unlock()
			if complete {
				return
			}
			select {
			case <-deadline:
				return
			case <-time.After(time.Millisecond):
			}
		}
	}()

	wg.Wait()
	<-pollDone

	s.Len(seen, submitters*perSubmitter)
	for id, count := range seen {
		s.Equal(1, count, "request %d delivered %d times", id, count)
	}
	s.Empty(p.FetchCompletedPaths())
}

func (s *PathfinderTestSuite) TestSubmitPathRequest_FIFOOrder() {
	p := s.fromRows(
		"........",
		"........",
	)

	for id := uint64(1); id <= 30; id++ {
		s.Require().NoError(p.SubmitPathRequest(id, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: int(id % 8), Y: 1}))
	}

	var order []uint64
	s.Eventually(func() bool {
		for _, result := range p.FetchCompletedPaths() {
			order = append(order, result.RequestID)
		}
		return len(order) == 30
	}, 5*time.Second, time.Millisecond)

	for i, id := range order {
		s.Equal(uint64(i+1), id)
	}
}

func (s *PathfinderTestSuite) TestSubmitPathRequest_UnreachableReportsEmptyPath() {
	p := s.fromRows(
		".#.",
		".#.",
	)

	s.Require().NoError(p.SubmitPathRequest(7, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 2, Y: 0}))

	var results []pathfinding.PathResult
	s.Eventually(func() bool {
		results = append(results, p.FetchCompletedPaths()...)
		return len(results) == 1
	}, 5*time.Second, time.Millisecond)

	s.Equal(uint64(7), results[0].RequestID)
	s.Empty(results[0].Path)
}

func (s *PathfinderTestSuite) TestFetchCompletedPaths_EmptyWhenNothingReady() {
	p := s.fromRows("..")

	s.Empty(p.FetchCompletedPaths())
}

func (s *PathfinderTestSuite) TestMaxPendingResultsEvictsOldest() {
	p := s.newPathfinder(&pathfinding.Config{Width: 4, Height: 4, MaxPendingResults: 3})

	for id := uint64(1); id <= 5; id++ {
		s.Require().NoError(p.SubmitPathRequest(id, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 3, Y: 3}))
	}

	// A future queued after the tagged requests resolves only once they are done.
	future, err := p.FindPathAsync(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 1, Y: 1})
	s.Require().NoError(err)
	_, err = future.Wait(context.Background())
	s.Require().NoError(err)

	results := p.FetchCompletedPaths()
	s.Require().Len(results, 3)
	s.Equal(uint64(3), results[0].RequestID)
	s.Equal(uint64(5), results[2].RequestID)
}

func (s *PathfinderTestSuite) TestCloseDrainsQueueAndRejectsNewWork() {
	p, err := pathfinding.New(&pathfinding.Config{Width: 30, Height: 30})
	s.Require().NoError(err)

	for id := uint64(1); id <= 20; id++ {
		s.Require().NoError(p.SubmitPathRequest(id, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 29, Y: 29}))
	}

	p.Close()

	s.Len(p.FetchCompletedPaths(), 20)

	err = p.SubmitPathRequest(21, pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 1, Y: 1})
	s.True(errors.IsUnavailable(err))

	_, err = p.FindPathAsync(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 1, Y: 1})
	s.True(errors.IsUnavailable(err))

	s.NotPanics(p.Close)

	// Blocking queries do not need the worker.
	s.Len(p.FindPath(pathfinding.Point{X: 0, Y: 0}, pathfinding.Point{X: 2, Y: 2}), 3)
}

func (s *PathfinderTestSuite) TestConcurrentMixedCallers() {
	p := s.fromRows(
		"............",
		".####.####..",
		"............",
		"..####.####.",
		"............",
	)
	start := pathfinding.Point{X: 0, Y: 0}
	end := pathfinding.Point{X: 11, Y: 4}
	expected := len(p.FindPath(start, end))
	s.Require().Positive(expected)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Len(p.FindPath(start, end), expected)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				future, err := p.FindPathAsync(start, end)
				if !s.NoError(err) {
					return
				}
				path, err := future.Wait(context.Background())
				s.NoError(err)
				s.Len(path, expected)
			}
		}()
	}
	wg.Wait()
}
