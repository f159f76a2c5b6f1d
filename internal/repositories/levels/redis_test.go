package levels_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Esderin/Standard-of-Iron/internal/buildings"
	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/repositories/levels"
	"github.com/Esderin/Standard-of-Iron/internal/testutils"
)

type RedisLevelsTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo levels.Repository
	ctx  context.Context
}

func TestRedisLevelsSuite(t *testing.T) {
	suite.Run(t, new(RedisLevelsTestSuite))
}

func (s *RedisLevelsTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := levels.NewRedis(&levels.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisLevelsTestSuite) testLevel(id string) *levels.LevelData {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &levels.LevelData{
		ID:          id,
		Width:       4,
		Height:      2,
		CellSize:    1,
		OffsetX:     -2,
		OffsetZ:     -1,
		TerrainRows: []string{"..M.", ".^=E"},
		Buildings: []buildings.Footprint{
			{ID: "depot", CenterX: 1, CenterZ: 0, Width: 1, Depth: 1},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (s *RedisLevelsTestSuite) TestNewRedis() {
	_, err := levels.NewRedis(nil)
	s.ErrorContains(err, "config cannot be nil")

	_, err = levels.NewRedis(&levels.RedisConfig{})
	s.ErrorContains(err, "client cannot be nil")
}

func (s *RedisLevelsTestSuite) TestSaveAndGet() {
	level := s.testLevel("lvl_1")
	_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: level})
	s.Require().NoError(err)

	s.True(s.mr.Exists(levels.Key("lvl_1")))
	members, err := s.mr.Members("levels")
	s.Require().NoError(err)
	s.Equal([]string{"lvl_1"}, members)

	out, err := s.repo.Get(s.ctx, &levels.GetInput{LevelID: "lvl_1"})
	s.Require().NoError(err)
	s.Equal(level, out.Level)
}

func (s *RedisLevelsTestSuite) TestSaveOverwrites() {
	level := s.testLevel("lvl_1")
	_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: level})
	s.Require().NoError(err)

	level.Buildings = nil
	_, err = s.repo.Save(s.ctx, &levels.SaveInput{Level: level})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &levels.GetInput{LevelID: "lvl_1"})
	s.Require().NoError(err)
	s.Empty(out.Level.Buildings)

	list, err := s.repo.List(s.ctx, &levels.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"lvl_1"}, list.LevelIDs)
}

func (s *RedisLevelsTestSuite) TestSaveValidation() {
	testCases := []struct {
		name  string
		input *levels.SaveInput
	}{
		{name: "nil input", input: nil},
		{name: "nil level", input: &levels.SaveInput{}},
		{name: "missing id", input: &levels.SaveInput{Level: &levels.LevelData{Width: 1, Height: 1}}},
		{name: "zero size", input: &levels.SaveInput{Level: &levels.LevelData{ID: "x"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisLevelsTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, &levels.GetInput{LevelID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["level_id"])

	_, err = s.repo.Get(s.ctx, &levels.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.mr.Set(levels.Key("corrupt"), "{not json"))
	_, err = s.repo.Get(s.ctx, &levels.GetInput{LevelID: "corrupt"})
	s.True(errors.IsInternal(err))
}

func (s *RedisLevelsTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: s.testLevel("lvl_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &levels.DeleteInput{LevelID: "lvl_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists(levels.Key("lvl_1")))

	_, err = s.repo.Delete(s.ctx, &levels.DeleteInput{LevelID: "lvl_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &levels.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisLevelsTestSuite) TestListSorted() {
	for _, id := range []string{"lvl_c", "lvl_a", "lvl_b"} {
		_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: s.testLevel(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &levels.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"lvl_a", "lvl_b", "lvl_c"}, out.LevelIDs)
}

func (s *RedisLevelsTestSuite) TestRedisFailureIsInternal() {
	s.mr.SetError("READONLY simulated failure")
	defer s.mr.SetError("")

	_, err := s.repo.Get(s.ctx, &levels.GetInput{LevelID: "lvl_1"})
	s.True(errors.IsInternal(err))

	_, err = s.repo.List(s.ctx, &levels.ListInput{})
	s.True(errors.IsInternal(err))
}
