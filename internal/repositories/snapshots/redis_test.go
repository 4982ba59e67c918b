package snapshots_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-realtime/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-realtime/internal/redis"
	"github.com/KirkDiggler/rpg-realtime/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-realtime/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redis.Client
	server    *miniredis.Miniredis
	cleanup   func()
	repo      snapshots.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.client, s.server, s.cleanup = testutils.CreateTestRedisServer(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	var err error
	s.repo, err = snapshots.NewRedisRepository(&snapshots.Config{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func snapshot(id string, hp int) *battler.Snapshot {
	return &battler.Snapshot{
		ID:       id,
		Name:     "Goblin",
		Kind:     entities.KindEnemy,
		Team:     entities.TeamEnemy,
		Position: entities.Point{X: 3, Y: 4},
		HP:       hp,
		MaxHP:    40,
		Phase:    battler.PhasePrepare,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRequiresDependencies() {
	_, err := snapshots.NewRedisRepository(&snapshots.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	out, err := s.repo.Save(s.ctx, &snapshots.SaveInput{
		Frame:     42,
		Snapshots: []*battler.Snapshot{snapshot("goblin-1", 30), nil, {}},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Saved)

	got, err := s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "goblin-1"})
	s.Require().NoError(err)
	s.Equal(int64(42), got.Record.Frame)
	s.True(s.now.Equal(got.Record.SavedAt))
	s.True(s.now.Add(5 * time.Minute).Equal(got.Record.ExpiresAt))
	s.Equal(30, got.Record.Snapshot.HP)
	s.Equal(entities.Point{X: 3, Y: 4}, got.Record.Snapshot.Position)

	s.True(s.server.Exists("snapshot:goblin-1"))
	s.Equal(5*time.Minute, s.server.TTL("snapshot:goblin-1"))
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesPreviousSnapshot() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Frame: 1, Snapshots: []*battler.Snapshot{snapshot("goblin-1", 40)}})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, &snapshots.SaveInput{Frame: 2, Snapshots: []*battler.Snapshot{snapshot("goblin-1", 12)}})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "goblin-1"})
	s.Require().NoError(err)
	s.Equal(int64(2), got.Record.Frame)
	s.Equal(12, got.Record.Snapshot.HP)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListDropsExpiredEntries() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{
		Snapshots: []*battler.Snapshot{snapshot("b", 10), snapshot("a", 20)},
		TTL:       time.Minute,
	})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, &snapshots.SaveInput{
		Snapshots: []*battler.Snapshot{snapshot("c", 30)},
		TTL:       time.Hour,
	})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, &snapshots.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 3)
	s.Equal("a", list.Records[0].Snapshot.ID)
	s.Equal("b", list.Records[1].Snapshot.ID)

	s.server.FastForward(2 * time.Minute)

	list, err = s.repo.List(s.ctx, &snapshots.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 1)
	s.Equal("c", list.Records[0].Snapshot.ID)

	members, err := s.server.SMembers("snapshot_index")
	s.Require().NoError(err)
	s.Equal([]string{"c"}, members)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshots: []*battler.Snapshot{snapshot("goblin-1", 30)}})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &snapshots.DeleteInput{EntityID: "goblin-1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, &snapshots.DeleteInput{EntityID: "goblin-1"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "goblin-1"})
	s.True(errors.IsNotFound(err))
}
