// Package damage applies queued damage to actor health. It is the only place health
// goes down and the only source of death events.
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=mockdamage -source=service.go

import (
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/effects"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Applied is the outcome of one resolved damage instance
type Applied struct {
	Damage   entities.DamageInstance
	Absorbed float64
	Dealt    float64
	Killed   bool
}

// Service defines damage resolution
type Service interface {
	// Deal queues damage for the next Resolve
	Deal(damage entities.DamageInstance)

	// Pending returns the number of queued damage instances
	Pending() int

	// Resolve applies queued damage in arrival order and emits damage and death events
	Resolve() []*Applied
}

type service struct {
	world   *world.Registry
	effects *effects.Manager
	bus     *events.Bus
	logger  *slog.Logger

	queue []entities.DamageInstance
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	World   *world.Registry
	Effects *effects.Manager
	Bus     *events.Bus
	Logger  *slog.Logger
}

// NewService creates a new damage service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.Effects == nil {
		panic("effect manager is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		world:   cfg.World,
		effects: cfg.Effects,
		bus:     cfg.Bus,
		logger:  logger.With("service", "damage"),
	}
}

func (s *service) Deal(damage entities.DamageInstance) {
	s.queue = append(s.queue, damage)
}

func (s *service) Pending() int {
	return len(s.queue)
}

func (s *service) Resolve() []*Applied {
	queue := s.queue
	s.queue = nil

	out := make([]*Applied, 0, len(queue))
	for _, dmg := range queue {
		target, ok := s.world.Actor(dmg.TargetID)
		if !ok {
			s.logger.Warn("damage for unknown target dropped", "target_id", dmg.TargetID)
			continue
		}
		if !target.IsAlive() {
			continue
		}

		applied := &Applied{Damage: dmg}
		applied.Absorbed = s.absorb(target.ID, dmg.Amount)
		applied.Dealt = dmg.Amount - applied.Absorbed
		applied.Killed = target.Health.ApplyDamage(applied.Dealt)
		out = append(out, applied)

		s.report(target, applied)
	}

	return out
}

// absorb consumes a prepared block on the target and returns how much it stopped
func (s *service) absorb(targetID string, amount float64) float64 {
	block, ok := s.effects.Get(targetID, effects.KindPreparedBlock)
	if !ok || amount <= 0 {
		return 0
	}

	s.effects.Remove(targetID, effects.KindPreparedBlock)
	return min(amount, block.Magnitude)
}

func (s *service) report(target *entities.Actor, applied *Applied) {
	fightID := ""
	if fight, ok := s.world.FightOf(target.ID); ok {
		fightID = fight.ID
	}

	s.logger.Debug("damage applied",
		"target_id", target.ID, "dealt", applied.Dealt, "absorbed", applied.Absorbed,
		"health", target.Health.Current)

	err := s.bus.Emit(&events.DamageDealtEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDamageDealt, FightID: fightID},
		Damage:    applied.Damage,
		Absorbed:  applied.Absorbed,
		Applied:   applied.Dealt,
	})
	if err != nil {
		s.logger.Error("damage listener failed", "target_id", target.ID, "error", err)
	}

	if !applied.Killed {
		return
	}

	s.logger.Info("actor died", "actor_id", target.ID, "fight_id", fightID)
	err = s.bus.Emit(&events.ActorDiedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeActorDied, FightID: fightID},
		ActorID:   target.ID,
		Faction:   target.Faction,
	})
	if err != nil {
		s.logger.Error("death listener failed", "actor_id", target.ID, "error", err)
	}
}
