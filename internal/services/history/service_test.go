package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	mockfights "github.com/KirkDiggler/skirmish/internal/repositories/fights/mock"
	"github.com/KirkDiggler/skirmish/internal/services/history"
	mockhistory "github.com/KirkDiggler/skirmish/internal/services/history/mock"
	"github.com/KirkDiggler/skirmish/internal/testutils"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/KirkDiggler/skirmish/internal/world"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	repo         *mockfights.MockRepository
	timeProvider *mockhistory.MockTimeProvider
	world        *world.Registry
	svc          history.Service
	ctx          context.Context

	fight  *entities.Fight
	player *entities.Actor
	enemy  *entities.Actor
	now    time.Time
}

func (s *HistoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockfights.NewMockRepository(s.ctrl)
	s.timeProvider = mockhistory.NewMockTimeProvider(s.ctrl)
	s.world = world.NewRegistry(&world.RegistryConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	s.svc = history.NewService(&history.ServiceConfig{
		World:        s.world,
		Repository:   s.repo,
		TimeProvider: s.timeProvider,
	})
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	s.fight = s.world.SpawnFight("arena")
	var err error
	s.player, err = s.world.SpawnActor(s.fight.ID, testutils.CreateTestActor("", entities.FactionPlayer, 100))
	s.Require().NoError(err)
	s.enemy, err = s.world.SpawnActor(s.fight.ID, testutils.CreateTestActor("", entities.FactionEnemy, 100))
	s.Require().NoError(err)
}

func (s *HistoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHistoryServiceSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}

func (s *HistoryServiceTestSuite) endFight() {
	s.player.Health.ApplyDamage(35)
	s.enemy.Health.ApplyDamage(100)
	s.fight.Result = entities.FactionVictory(entities.FactionPlayer, 12*time.Second)
}

func (s *HistoryServiceTestSuite) TestBuild() {
	s.endFight()
	s.timeProvider.EXPECT().Now().Return(s.now)

	record, err := s.svc.Build(s.fight.ID)
	s.Require().NoError(err)

	s.Equal(s.fight.ID, record.ID)
	s.Equal("arena", record.Name)
	s.Equal(entities.FactionPlayer, record.Winner)
	s.Equal(12*time.Second, record.Elapsed)
	s.Equal(s.now, record.EndedAt)
	s.Equal([]entities.MemberRecord{
		{ActorID: s.player.ID, Faction: entities.FactionPlayer, Health: 65, MaxHealth: 100, Alive: true},
		{ActorID: s.enemy.ID, Faction: entities.FactionEnemy, Health: 0, MaxHealth: 100, Alive: false},
	}, record.Members)
}

func (s *HistoryServiceTestSuite) TestBuild_FightNotEnded() {
	_, err := s.svc.Build(s.fight.ID)
	s.True(simerr.IsFailedPrecondition(err))
}

func (s *HistoryServiceTestSuite) TestBuild_UnknownFight() {
	_, err := s.svc.Build("missing")
	s.True(simerr.IsNotFound(err))

	_, err = s.svc.Build("")
	s.True(simerr.IsInvalidArgument(err))
}

func (s *HistoryServiceTestSuite) TestSave() {
	s.endFight()
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record *entities.FightRecord) error {
			s.Equal(s.fight.ID, record.ID)
			s.Len(record.Members, 2)
			return nil
		})

	record, err := s.svc.Save(s.ctx, s.fight.ID)
	s.Require().NoError(err)
	s.Equal(entities.FactionPlayer, record.Winner)
}

func (s *HistoryServiceTestSuite) TestSave_RepositoryError() {
	s.endFight()
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := s.svc.Save(s.ctx, s.fight.ID)
	s.Error(err)
}

func (s *HistoryServiceTestSuite) TestSave_AlreadySavedKeepsCode() {
	s.endFight()
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(simerr.AlreadyExistsf("fight record %s already exists", s.fight.ID))

	_, err := s.svc.Save(s.ctx, s.fight.ID)
	s.True(simerr.Is(err, simerr.CodeAlreadyExists))
}

func (s *HistoryServiceTestSuite) TestRecent() {
	records := []*entities.FightRecord{testutils.CreateTestFightRecord("a", s.now)}
	s.repo.EXPECT().ListRecent(s.ctx, 5).Return(records, nil)

	got, err := s.svc.Recent(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(records, got)
}
