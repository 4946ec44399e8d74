// Package fight owns the per-fight clock: it starts paused, starts running on the first
// user command, ticks every step while running and stops when the end check records a
// winner.
package fight

//go:generate mockgen -destination=mock/mock_service.go -package=mockfight -source=service.go

import (
	"errors"
	"log/slog"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Service defines the fight clock and end check
type Service interface {
	// Get retrieves a fight by ID
	Get(fightID string) (*entities.Fight, error)

	// Status returns whether the fight is paused, running or ended
	Status(fightID string) (entities.FightStatus, error)

	// IsPaused reports whether a fight's clock is stopped. Unknown fights are not paused.
	IsPaused(fightID string) bool

	// IsActorPaused resolves the actor's fight and reports whether its clock is stopped.
	// Actors without a fight are not paused.
	IsActorPaused(actorID string) bool

	// HandleCommand starts the clock of a fight that is not ended when a user command
	// targets it. AI commands leave the clock alone.
	HandleCommand(fightID string, origin entities.Origin) error

	// SetPaused pauses or resumes a fight. Ended fights cannot be resumed.
	SetPaused(fightID string, paused bool) error

	// Tick advances every running clock by delta
	Tick(delta time.Duration)

	// NoteDeath queues the dead actor's fight for the next end check
	NoteDeath(actorID string)

	// CheckEnd runs the end check for every fight that saw a death since the last call
	// and returns the fights that ended. A fight with no faction left alive is not
	// decided and is reported as an internal error.
	CheckEnd() ([]*entities.Fight, error)
}

type service struct {
	world  *world.Registry
	bus    *events.Bus
	logger *slog.Logger

	// fight IDs with a liveness change waiting for the end check, in arrival order
	pending []string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	World  *world.Registry
	Bus    *events.Bus
	Logger *slog.Logger
}

// NewService creates a new fight service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		world:  cfg.World,
		bus:    cfg.Bus,
		logger: logger.With("service", "fight"),
	}
}

func (s *service) Get(fightID string) (*entities.Fight, error) {
	fight, ok := s.world.Fight(fightID)
	if !ok {
		return nil, simerr.NotFoundf("fight %s not found", fightID)
	}
	return fight, nil
}

func (s *service) Status(fightID string) (entities.FightStatus, error) {
	fight, err := s.Get(fightID)
	if err != nil {
		return "", err
	}
	return fight.Status(), nil
}

func (s *service) IsPaused(fightID string) bool {
	fight, ok := s.world.Fight(fightID)
	return ok && fight.IsPaused()
}

func (s *service) IsActorPaused(actorID string) bool {
	fight, ok := s.world.FightOf(actorID)
	return ok && fight.IsPaused()
}

func (s *service) HandleCommand(fightID string, origin entities.Origin) error {
	fight, err := s.Get(fightID)
	if err != nil {
		return err
	}

	if origin != entities.OriginUserInteraction || fight.IsEnded() || !fight.IsPaused() {
		return nil
	}

	fight.Clock.Unpause()
	s.logger.Info("fight clock started", "fight_id", fight.ID, "elapsed", fight.Clock.Elapsed())

	return nil
}

func (s *service) SetPaused(fightID string, paused bool) error {
	fight, err := s.Get(fightID)
	if err != nil {
		return err
	}

	if !paused && fight.IsEnded() {
		return simerr.FailedPreconditionf("fight %s has ended", fightID).
			WithMeta("fight_id", fightID)
	}

	fight.Clock.SetPaused(paused)
	return nil
}

func (s *service) Tick(delta time.Duration) {
	for _, fight := range s.world.Fights() {
		fight.Clock.Tick(delta)
	}
}

func (s *service) NoteDeath(actorID string) {
	fight, ok := s.world.FightOf(actorID)
	if !ok {
		s.logger.Warn("death of actor without a fight", "actor_id", actorID)
		return
	}

	for _, id := range s.pending {
		if id == fight.ID {
			return
		}
	}
	s.pending = append(s.pending, fight.ID)
}

func (s *service) CheckEnd() ([]*entities.Fight, error) {
	pending := s.pending
	s.pending = nil

	var ended []*entities.Fight
	var errs []error
	for _, fightID := range pending {
		fight, ok := s.world.Fight(fightID)
		if !ok || fight.IsEnded() {
			continue
		}

		alive := s.aliveFactions(fightID)
		switch len(alive) {
		case 0:
			s.logger.Error("no faction left alive, fight result not recorded", "fight_id", fightID)
			errs = append(errs, simerr.Internalf("fight %s has no faction left alive", fightID).
				WithMeta("fight_id", fightID))
		case 1:
			s.end(fight, alive[0])
			ended = append(ended, fight)
		}
	}

	return ended, errors.Join(errs...)
}

func (s *service) aliveFactions(fightID string) []entities.Faction {
	var factions []entities.Faction
	seen := make(map[entities.Faction]bool)

	for _, actor := range s.world.Members(fightID) {
		if !actor.IsAlive() || seen[actor.Faction] {
			continue
		}
		seen[actor.Faction] = true
		factions = append(factions, actor.Faction)
	}

	return factions
}

func (s *service) end(fight *entities.Fight, winner entities.Faction) {
	fight.Result = entities.FactionVictory(winner, fight.Clock.Elapsed())
	fight.Clock.Pause()

	s.logger.Info("fight ended",
		"fight_id", fight.ID, "winner", winner, "elapsed", fight.Result.Elapsed)

	err := s.bus.Emit(&events.FightEndedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeFightEnded, FightID: fight.ID},
		Winner:    winner,
		Elapsed:   fight.Result.Elapsed,
	})
	if err != nil {
		s.logger.Error("fight ended listener failed", "fight_id", fight.ID, "error", err)
	}
}
