package snapshots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-realtime/internal/repositories/snapshots"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Simulated
	repo  *snapshots.InMemoryRepository
	ctx   context.Context
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.clock = clock.NewSimulated(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Minute)
	s.repo = snapshots.NewInMemory(s.clock)
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestSaveGetAndExpire() {
	out, err := s.repo.Save(s.ctx, &snapshots.SaveInput{
		Frame:     7,
		Snapshots: []*battler.Snapshot{snapshot("goblin-1", 25)},
		TTL:       90 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Saved)

	got, err := s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "goblin-1"})
	s.Require().NoError(err)
	s.Equal(int64(7), got.Record.Frame)
	s.Equal(25, got.Record.Snapshot.HP)

	s.clock.Advance()
	s.clock.Advance()

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{EntityID: "goblin-1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, &snapshots.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Records)
}

func (s *InMemoryRepositoryTestSuite) TestListIsOrdered() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{
		Snapshots: []*battler.Snapshot{snapshot("c", 1), snapshot("a", 2), snapshot("b", 3)},
	})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(list.Records, 3)
	s.Equal("a", list.Records[0].Snapshot.ID)
	s.Equal("b", list.Records[1].Snapshot.ID)
	s.Equal("c", list.Records[2].Snapshot.ID)
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshots: []*battler.Snapshot{snapshot("a", 2)}})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &snapshots.DeleteInput{EntityID: "a"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Delete(s.ctx, &snapshots.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestNilInput() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
