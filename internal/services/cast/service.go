// Package cast runs ongoing casts. Each slot holds at most one cast. A cast either
// finishes when its countdown completes or is aborted when it is cancelled or replaced,
// and in both cases the record is gone by the end of the call.
package cast

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/services/fight"
	"github.com/KirkDiggler/skirmish/internal/timer"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// State of an ongoing cast. Only Casting is ever stored; the other two are the signals
// emitted as the record is removed.
type State string

const (
	StateCasting              State = "casting"
	StateFinishedSuccessfully State = "finished_successfully"
	StateAborted              State = "aborted"
)

// OngoingCast is an in-progress cast on a slot
type OngoingCast struct {
	ID          string
	FightID     string
	CasterID    string
	SlotID      string
	AbilityID   string
	AbilityKind entities.AbilityKind
	TargetID    *string
	Timer       *timer.Timer
	State       State
}

// Remaining returns the countdown left
func (c *OngoingCast) Remaining() time.Duration {
	return c.Timer.Remaining()
}

// StartInput describes a validated cast to record
type StartInput struct {
	FightID  string
	CasterID string
	SlotID   string
	Ability  *entities.AbilityInstance
	TargetID *string
}

// Service defines the ongoing cast state machine
type Service interface {
	// Start records a new cast on the slot. A cast already on the slot is aborted first.
	Start(input *StartInput) (*OngoingCast, error)

	// Cancel aborts the slot's cast. The abort event is emitted while the cast is still
	// recorded. Returns false when the slot had no cast.
	Cancel(slotID string) bool

	// Get returns the cast on a slot
	Get(slotID string) (*OngoingCast, bool)

	// IsCasting reports whether the slot has a cast in progress
	IsCasting(slotID string) bool

	// List returns every ongoing cast ordered by slot ID
	List() []*OngoingCast

	// Tick advances casts whose fight is running and returns the casts that finished
	Tick(delta time.Duration) []*OngoingCast

	// Cleanup drops records that are no longer casting and returns how many
	Cleanup() int

	// Remove drops the casts of the given slots without emitting anything
	Remove(slotIDs ...string)
}

type service struct {
	world         *world.Registry
	fights        fight.Service
	bus           *events.Bus
	uuidGenerator uuid.Generator
	logger        *slog.Logger

	casts map[string]*OngoingCast // slotID -> cast
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	World         *world.Registry
	FightService  fight.Service
	Bus           *events.Bus
	UUIDGenerator uuid.Generator
	Logger        *slog.Logger
}

// NewService creates a new cast service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.FightService == nil {
		panic("fight service is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	svc := &service{
		world:  cfg.World,
		fights: cfg.FightService,
		bus:    cfg.Bus,
		logger: cfg.Logger,
		casts:  make(map[string]*OngoingCast),
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	svc.logger = svc.logger.With("service", "cast")

	return svc
}

func (s *service) Start(input *StartInput) (*OngoingCast, error) {
	if input == nil || input.Ability == nil {
		return nil, simerr.InvalidArgument("ability is required")
	}
	if input.SlotID == "" {
		return nil, simerr.InvalidArgument("slot ID is required")
	}

	s.Cancel(input.SlotID)

	c := &OngoingCast{
		ID:          s.uuidGenerator.New(),
		FightID:     input.FightID,
		CasterID:    input.CasterID,
		SlotID:      input.SlotID,
		AbilityID:   input.Ability.ID,
		AbilityKind: input.Ability.Kind,
		TargetID:    input.TargetID,
		Timer:       timer.New(input.Ability.CastTime, timer.Once),
		State:       StateCasting,
	}
	s.casts[input.SlotID] = c

	s.emit(events.EventTypeCastStarted, c)

	return c, nil
}

func (s *service) Cancel(slotID string) bool {
	c, ok := s.casts[slotID]
	if !ok {
		return false
	}

	if c.State == StateCasting {
		c.State = StateAborted
		s.emit(events.EventTypeCastAborted, c)
	}
	delete(s.casts, slotID)

	return true
}

func (s *service) Get(slotID string) (*OngoingCast, bool) {
	c, ok := s.casts[slotID]
	return c, ok
}

func (s *service) IsCasting(slotID string) bool {
	c, ok := s.casts[slotID]
	return ok && c.State == StateCasting
}

func (s *service) List() []*OngoingCast {
	out := make([]*OngoingCast, 0, len(s.casts))
	for _, slotID := range slices.Sorted(maps.Keys(s.casts)) {
		out = append(out, s.casts[slotID])
	}
	return out
}

func (s *service) Tick(delta time.Duration) []*OngoingCast {
	var finished []*OngoingCast

	for _, slotID := range slices.Sorted(maps.Keys(s.casts)) {
		c, ok := s.casts[slotID]
		if !ok {
			// a listener removed it earlier in this tick
			continue
		}

		if c.State != StateCasting || c.Timer.Finished() {
			s.logger.Warn("stale cast record, removing", "slot_id", slotID, "state", c.State)
			delete(s.casts, slotID)
			continue
		}

		holder, ok := s.world.SlotHolder(slotID)
		if !ok {
			s.logger.Warn("cast on a slot nobody holds, aborting", "slot_id", slotID)
			c.State = StateAborted
			s.emit(events.EventTypeCastAborted, c)
			delete(s.casts, slotID)
			continue
		}

		if s.fights.IsActorPaused(holder.ID) {
			continue
		}

		c.Timer.Tick(delta)
		if !c.Timer.Finished() {
			continue
		}

		c.State = StateFinishedSuccessfully
		delete(s.casts, slotID)
		s.emit(events.EventTypeCastFinished, c)

		finished = append(finished, c)
	}

	return finished
}

func (s *service) Cleanup() int {
	removed := 0
	for slotID, c := range s.casts {
		if c.State == StateCasting && !c.Timer.Finished() {
			continue
		}
		s.logger.Warn("stale cast record, removing", "slot_id", slotID, "state", c.State)
		delete(s.casts, slotID)
		removed++
	}
	return removed
}

func (s *service) Remove(slotIDs ...string) {
	for _, id := range slotIDs {
		delete(s.casts, id)
	}
}

func (s *service) emit(eventType events.EventType, c *OngoingCast) {
	event := events.NewCastEvent(eventType, c.FightID)
	event.CastID = c.ID
	event.CasterID = c.CasterID
	event.SlotID = c.SlotID
	event.AbilityID = c.AbilityID
	event.AbilityKind = c.AbilityKind
	event.TargetID = c.TargetID
	event.Remaining = c.Remaining()

	if err := s.bus.Emit(event); err != nil {
		s.logger.Error("cast listener failed",
			"event", eventType, "slot_id", c.SlotID, "ability_id", c.AbilityID, "error", err)
	}
}
