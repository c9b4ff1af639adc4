package layout_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/redis"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
	"github.com/KirkDiggler/rpg-mapgen/internal/testutils"
)

const (
	openBorderLayout = `{"environment":"dungeon","grid":{"width":9,"height":5,"rows":["#########","#.......#","........#","#.......#","#########"]}}`
	twoRegionLayout  = `{"environment":"dungeon","grid":{"width":9,"height":5,"rows":["#########","#...#...#","#...#...#","#...#...#","#########"]}}`
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	now     time.Time
	repo    layout.Repository
	ctx     context.Context
	key     layout.Key
	grid    *terrain.Grid
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.mr, s.cleanup = testutils.CreateTestRedis(s.T())
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	repo, err := layout.NewRedisRepository(&layout.Config{
		Client: s.client,
		Clock:  clock.Fixed{At: s.now},
		TTL:    30 * time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()

	s.key = layout.Key{
		Environment: entities.EnvironmentDungeon,
		Algorithm:   entities.AlgorithmBSP,
		Width:       9,
		Height:      5,
		Seed:        42,
	}
	s.grid = terrain.MustParse(
		"#########",
		"#...#...#",
		"#.......#",
		"#...#...#",
		"#########",
	)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestKey() {
	s.Equal("layout:dungeon:bsp:9x5:42", s.key.String())
	s.Equal("layout:forest:none:80x40:-7", layout.Key{
		Environment: entities.EnvironmentForest,
		Width:       80,
		Height:      40,
		Seed:        -7,
	}.String())
}

func (s *RedisRepositoryTestSuite) TestParseKey() {
	for _, k := range []layout.Key{
		s.key,
		{Environment: entities.EnvironmentForest, Width: 80, Height: 40, Seed: -7},
		{Environment: entities.EnvironmentDungeon, Algorithm: entities.AlgorithmRoomsCorridors, Width: 200, Height: 120},
	} {
		parsed, err := layout.ParseKey(k.String())
		s.Require().NoError(err, k.String())
		s.Equal(k, parsed)
	}

	for _, bad := range []string{
		"session:123",
		"layout:dungeon:bsp:9x5",
		"layout:swamp:none:9x5:1",
		"layout:dungeon:maze:9x5:1",
		"layout:dungeon:bsp:wide:1",
		"layout:dungeon:bsp:9x5:lucky",
		"layout:forest:none:80x40junk:7",
		"layout:dungeon:bsp:09x5:1",
		"layout:dungeon:bsp:9x5:+1",
	} {
		_, err := layout.ParseKey(bad)
		s.Error(err, bad)
		s.True(errors.IsInvalidArgument(err), bad)
	}
}

func (s *RedisRepositoryTestSuite) TestSweep() {
	_, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid})
	s.Require().NoError(err)

	other := s.key
	other.Seed = 7
	_, err = s.repo.Save(s.ctx, layout.SaveInput{Key: other, Grid: s.grid})
	s.Require().NoError(err)

	s.Require().NoError(s.mr.Set("layout:dungeon:bsp:9x5:99", "{not json"))
	s.Require().NoError(s.mr.Set("layout:swamp:none:9x5:1", "{}"))
	s.Require().NoError(s.mr.Set("layout:dungeon:bsp:9x5junk:3", "{}"))
	s.Require().NoError(s.mr.Set("layout:dungeon:bsp:9x5:5", twoRegionLayout))
	s.Require().NoError(s.mr.Set("session:123", "{not json"))

	out, err := s.repo.Sweep(s.ctx, layout.SweepInput{})
	s.Require().NoError(err)
	s.Equal(6, out.Checked)
	s.ElementsMatch([]string{
		"layout:dungeon:bsp:9x5:99",
		"layout:swamp:none:9x5:1",
		"layout:dungeon:bsp:9x5junk:3",
		"layout:dungeon:bsp:9x5:5",
	}, out.Corrupt)
	s.Zero(out.Deleted)
	s.True(s.mr.Exists("layout:dungeon:bsp:9x5:99"))

	out, err = s.repo.Sweep(s.ctx, layout.SweepInput{Delete: true})
	s.Require().NoError(err)
	s.Equal(4, out.Deleted)
	s.False(s.mr.Exists("layout:dungeon:bsp:9x5:99"))
	s.False(s.mr.Exists("layout:swamp:none:9x5:1"))
	s.True(s.mr.Exists("session:123"))

	_, err = s.repo.Get(s.ctx, layout.GetInput{Key: s.key})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSweepEmpty() {
	out, err := s.repo.Sweep(s.ctx, layout.SweepInput{Delete: true})
	s.Require().NoError(err)
	s.Zero(out.Checked)
	s.Empty(out.Corrupt)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Layout.CreatedAt)
	s.Equal(s.now.Add(30*time.Minute), saved.Layout.ExpiresAt)

	s.True(s.mr.Exists("layout:dungeon:bsp:9x5:42"))
	s.Equal(30*time.Minute, s.mr.TTL("layout:dungeon:bsp:9x5:42"))

	got, err := s.repo.Get(s.ctx, layout.GetInput{Key: s.key})
	s.Require().NoError(err)
	s.Equal(s.grid.String(), got.Layout.Grid.String())
	s.Equal(entities.EnvironmentDungeon, got.Layout.Environment)
	s.Equal(entities.AlgorithmBSP, got.Layout.Algorithm)
	s.Equal(int64(42), got.Layout.Seed)
}

func (s *RedisRepositoryTestSuite) TestSaveWithTTLOverride() {
	_, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid, TTL: time.Minute})
	s.Require().NoError(err)

	s.Equal(time.Minute, s.mr.TTL(s.key.String()))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, layout.GetInput{Key: s.key})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid})
	s.Require().NoError(err)

	s.mr.FastForward(31 * time.Minute)

	_, err = s.repo.Get(s.ctx, layout.GetInput{Key: s.key})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorrupt() {
	s.Require().NoError(s.mr.Set(s.key.String(), "{not json"))

	_, err := s.repo.Get(s.ctx, layout.GetInput{Key: s.key})

	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetSizeMismatch() {
	other := s.key
	other.Width = 20
	s.Require().NoError(s.mr.Set(other.String(), `{"environment":"dungeon","grid":{"width":9,"height":5,"rows":["#########","#...#...#","#...#...#","#...#...#","#########"]}}`))

	_, err := s.repo.Get(s.ctx, layout.GetInput{Key: other})

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestGetRejectsBrokenGrid() {
	testCases := []struct {
		name string
		data string
	}{
		{name: "open border", data: openBorderLayout},
		{name: "disconnected regions", data: twoRegionLayout},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(s.mr.Set(s.key.String(), tc.data))

			_, err := s.repo.Get(s.ctx, layout.GetInput{Key: s.key})

			s.Require().Error(err)
			s.False(errors.IsNotFound(err))
			s.True(errors.IsFailedPrecondition(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestRedisDown() {
	s.mr.SetError("ERR server unavailable")

	_, err := s.repo.Get(s.ctx, layout.GetInput{Key: s.key})
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid})
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Delete(s.ctx, layout.DeleteInput{Key: s.key})
	s.True(errors.IsUnavailable(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key, Grid: s.grid})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, layout.DeleteInput{Key: s.key})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, layout.DeleteInput{Key: s.key})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Save(s.ctx, layout.SaveInput{Key: s.key})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, layout.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, layout.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestNewRedisRepository_Validation(t *testing.T) {
	_, err := layout.NewRedisRepository(&layout.Config{TTL: -time.Second})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "Client")
	assert.Contains(t, fields, "Clock")
	assert.Contains(t, fields, "TTL")

	_, err = layout.NewRedisRepository(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
