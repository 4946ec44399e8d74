package cast_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/services/cast"
	"github.com/KirkDiggler/skirmish/internal/services/fight"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	mockuuid "github.com/KirkDiggler/skirmish/internal/uuid/mocks"
	"github.com/KirkDiggler/skirmish/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CastServiceTestSuite struct {
	suite.Suite
	world   *world.Registry
	bus     *events.Bus
	fights  fight.Service
	service cast.Service

	fight   *entities.Fight
	caster  *entities.Actor
	slot    *entities.Slot
	strike  *entities.AbilityInstance
	instant *entities.AbilityInstance

	received []*events.CastEvent
}

func (s *CastServiceTestSuite) SetupTest() {
	s.world = world.NewRegistry(&world.RegistryConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	s.bus = events.NewBus()
	s.fights = fight.NewService(&fight.ServiceConfig{World: s.world, Bus: s.bus})
	s.service = cast.NewService(&cast.ServiceConfig{
		World:         s.world,
		FightService:  s.fights,
		Bus:           s.bus,
		UUIDGenerator: uuid.NewSequentialGenerator("cast"),
	})

	s.fight = s.world.SpawnFight("arena")
	var err error
	s.caster, err = s.world.SpawnActor(s.fight.ID, &entities.Actor{Faction: entities.FactionPlayer})
	s.Require().NoError(err)
	s.slot, err = s.world.AttachSlot(s.caster.ID, &entities.Slot{Type: entities.SlotTypeWeaponAttack})
	s.Require().NoError(err)
	s.strike, err = s.world.AttachAbility(s.caster.ID, &entities.AbilityInstance{
		Kind: entities.AbilityKindChargedStrike, CastTime: 1500 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.instant, err = s.world.AttachAbility(s.caster.ID, &entities.AbilityInstance{Kind: entities.AbilityKindAttack})
	s.Require().NoError(err)

	s.received = nil
	record := events.NewListenerFunc("recorder", events.PriorityObservers, func(e events.Event) error {
		s.received = append(s.received, e.(*events.CastEvent))
		return nil
	})
	s.bus.Subscribe(events.EventTypeCastStarted, record)
	s.bus.Subscribe(events.EventTypeCastAborted, record)
	s.bus.Subscribe(events.EventTypeCastFinished, record)

	s.Require().NoError(s.fights.SetPaused(s.fight.ID, false))
}

func (s *CastServiceTestSuite) start(ability *entities.AbilityInstance) *cast.OngoingCast {
	c, err := s.service.Start(&cast.StartInput{
		FightID:  s.fight.ID,
		CasterID: s.caster.ID,
		SlotID:   s.slot.ID,
		Ability:  ability,
	})
	s.Require().NoError(err)
	return c
}

func (s *CastServiceTestSuite) typesReceived() []events.EventType {
	var out []events.EventType
	for _, e := range s.received {
		out = append(out, e.GetType())
	}
	return out
}

func (s *CastServiceTestSuite) TestInstantCastFinishesOnFirstTick() {
	s.start(s.instant)
	s.True(s.service.IsCasting(s.slot.ID))

	finished := s.service.Tick(15 * time.Millisecond)

	s.Require().Len(finished, 1)
	s.Equal(cast.StateFinishedSuccessfully, finished[0].State)
	s.False(s.service.IsCasting(s.slot.ID))
	s.Equal([]events.EventType{events.EventTypeCastStarted, events.EventTypeCastFinished}, s.typesReceived())

	s.Empty(s.service.Tick(15 * time.Millisecond))
	s.Len(s.received, 2)
}

func (s *CastServiceTestSuite) TestTimedCastCountsDown() {
	s.start(s.strike)

	s.Empty(s.service.Tick(time.Second))
	c, ok := s.service.Get(s.slot.ID)
	s.Require().True(ok)
	s.Equal(500*time.Millisecond, c.Remaining())

	s.Len(s.service.Tick(500*time.Millisecond), 1)
	_, ok = s.service.Get(s.slot.ID)
	s.False(ok)
}

func (s *CastServiceTestSuite) TestReplaceAbortsFirstWhileOldCastIsReadable() {
	old := s.start(s.strike)

	var seenDuringAbort *cast.OngoingCast
	s.bus.Subscribe(events.EventTypeCastAborted, events.NewListenerFunc("reader", events.PriorityDefault,
		func(e events.Event) error {
			seenDuringAbort, _ = s.service.Get(e.(*events.CastEvent).SlotID)
			return nil
		}))

	replacement := s.start(s.instant)

	s.Require().NotNil(seenDuringAbort)
	s.Equal(old.ID, seenDuringAbort.ID)
	s.Equal(cast.StateAborted, old.State)

	s.Equal([]events.EventType{
		events.EventTypeCastStarted,
		events.EventTypeCastAborted,
		events.EventTypeCastStarted,
	}, s.typesReceived())
	s.Equal(s.strike.ID, s.received[1].AbilityID)

	current, ok := s.service.Get(s.slot.ID)
	s.Require().True(ok)
	s.Equal(replacement.ID, current.ID)
	s.Len(s.service.List(), 1)
}

func (s *CastServiceTestSuite) TestCancel() {
	s.False(s.service.Cancel(s.slot.ID))

	s.start(s.strike)
	s.True(s.service.Cancel(s.slot.ID))
	s.False(s.service.IsCasting(s.slot.ID))
	s.Equal(events.EventTypeCastAborted, s.received[len(s.received)-1].GetType())
}

func (s *CastServiceTestSuite) TestPauseFreezesRemaining() {
	s.start(s.strike)
	s.service.Tick(400 * time.Millisecond)

	s.Require().NoError(s.fights.SetPaused(s.fight.ID, true))
	s.service.Tick(5 * time.Second)

	c, ok := s.service.Get(s.slot.ID)
	s.Require().True(ok)
	s.Equal(1100*time.Millisecond, c.Remaining())

	s.Require().NoError(s.fights.SetPaused(s.fight.ID, false))
	s.service.Tick(100 * time.Millisecond)
	s.Equal(time.Second, c.Remaining())
}

func (s *CastServiceTestSuite) TestCastOnUnheldSlotIsAborted() {
	_, err := s.service.Start(&cast.StartInput{FightID: s.fight.ID, SlotID: "ghost", Ability: s.strike})
	s.Require().NoError(err)
	s.received = nil

	s.Empty(s.service.Tick(time.Second))
	s.False(s.service.IsCasting("ghost"))
	s.Require().Len(s.received, 1)
	s.Equal(events.EventTypeCastAborted, s.received[0].GetType())
	s.Equal("ghost", s.received[0].SlotID)
	s.Empty(s.service.List())
}

func (s *CastServiceTestSuite) TestFinishedCastReturnedWhenListenerFails() {
	s.bus.Subscribe(events.EventTypeCastFinished, events.NewListenerFunc("failing", events.PriorityObservers,
		func(events.Event) error { return simerr.Internalf("listener broke") }))
	s.start(s.instant)

	finished := s.service.Tick(15 * time.Millisecond)

	s.Require().Len(finished, 1)
	s.Equal(s.instant.ID, finished[0].AbilityID)
	s.False(s.service.IsCasting(s.slot.ID))
	s.Equal([]events.EventType{events.EventTypeCastStarted, events.EventTypeCastFinished}, s.typesReceived())
}

func (s *CastServiceTestSuite) TestStartValidatesInput() {
	_, err := s.service.Start(&cast.StartInput{SlotID: s.slot.ID})
	s.True(simerr.IsInvalidArgument(err))

	_, err = s.service.Start(&cast.StartInput{Ability: s.strike})
	s.True(simerr.IsInvalidArgument(err))
}

func (s *CastServiceTestSuite) TestRemoveEmitsNothing() {
	s.start(s.strike)
	s.received = nil

	s.service.Remove(s.slot.ID)

	s.False(s.service.IsCasting(s.slot.ID))
	s.Empty(s.received)
	s.Equal(0, s.service.Cleanup())
}

func TestCastServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CastServiceTestSuite))
}

func TestStart_CastIDFromGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mockuuid.NewMockGenerator(ctrl)

	reg := world.NewRegistry(&world.RegistryConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	bus := events.NewBus()
	svc := cast.NewService(&cast.ServiceConfig{
		World:         reg,
		FightService:  fight.NewService(&fight.ServiceConfig{World: reg, Bus: bus}),
		Bus:           bus,
		UUIDGenerator: ids,
	})

	f := reg.SpawnFight("arena")
	caster, err := reg.SpawnActor(f.ID, &entities.Actor{Faction: entities.FactionPlayer})
	require.NoError(t, err)
	slot, err := reg.AttachSlot(caster.ID, &entities.Slot{Type: entities.SlotTypeMagic})
	require.NoError(t, err)
	hex, err := reg.AttachAbility(caster.ID, &entities.AbilityInstance{Kind: entities.AbilityKindNeedlingHex})
	require.NoError(t, err)

	ids.EXPECT().New().Return("cast-42")

	c, err := svc.Start(&cast.StartInput{FightID: f.ID, CasterID: caster.ID, SlotID: slot.ID, Ability: hex})
	require.NoError(t, err)
	assert.Equal(t, "cast-42", c.ID)
}
