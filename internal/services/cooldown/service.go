// Package cooldown tracks countdowns that block reuse of an ability instance or a slot.
// A cooldown is removed in the same tick its timer runs out.
package cooldown

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/services/fight"
	"github.com/KirkDiggler/skirmish/internal/timer"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Cooldown is a countdown owned by an ability instance or a slot
type Cooldown struct {
	OwnerID string
	Timer   *timer.Timer
}

// Remaining returns the time left before the owner can be used again
func (c *Cooldown) Remaining() time.Duration {
	return c.Timer.Remaining()
}

// Service defines the cooldown tracker
type Service interface {
	// Start attaches a cooldown to the owner, replacing any running one.
	// Non-positive durations attach nothing and return nil.
	Start(ownerID string, duration time.Duration) *Cooldown

	// Get returns the owner's cooldown
	Get(ownerID string) (*Cooldown, bool)

	// IsOnCooldown reports whether the owner currently carries a cooldown
	IsOnCooldown(ownerID string) bool

	// Remaining returns the time left on the owner's cooldown, zero if none
	Remaining(ownerID string) time.Duration

	// Tick advances every cooldown whose fight is running and returns the owners whose
	// cooldown expired and was removed
	Tick(delta time.Duration) []string

	// Cleanup removes cooldowns that finished but are still attached and returns how many
	Cleanup() int

	// Remove drops the cooldowns of the given owners
	Remove(ownerIDs ...string)
}

type service struct {
	world     *world.Registry
	fights    fight.Service
	logger    *slog.Logger
	cooldowns map[string]*Cooldown
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	World        *world.Registry
	FightService fight.Service
	Logger       *slog.Logger
}

// NewService creates a new cooldown service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.FightService == nil {
		panic("fight service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		world:     cfg.World,
		fights:    cfg.FightService,
		logger:    logger.With("service", "cooldown"),
		cooldowns: make(map[string]*Cooldown),
	}
}

func (s *service) Start(ownerID string, duration time.Duration) *Cooldown {
	if duration <= 0 {
		return nil
	}

	cd := &Cooldown{
		OwnerID: ownerID,
		Timer:   timer.New(duration, timer.Once),
	}
	s.cooldowns[ownerID] = cd

	return cd
}

func (s *service) Get(ownerID string) (*Cooldown, bool) {
	cd, ok := s.cooldowns[ownerID]
	return cd, ok
}

func (s *service) IsOnCooldown(ownerID string) bool {
	_, ok := s.cooldowns[ownerID]
	return ok
}

func (s *service) Remaining(ownerID string) time.Duration {
	cd, ok := s.cooldowns[ownerID]
	if !ok {
		return 0
	}
	return cd.Remaining()
}

func (s *service) Tick(delta time.Duration) []string {
	var expired []string

	for _, ownerID := range slices.Sorted(maps.Keys(s.cooldowns)) {
		cd := s.cooldowns[ownerID]

		if cd.Timer.Finished() {
			s.logger.Warn("finished cooldown still attached, removing", "owner_id", ownerID)
			delete(s.cooldowns, ownerID)
			continue
		}

		if holder, ok := s.holderOf(ownerID); ok && s.fights.IsActorPaused(holder.ID) {
			continue
		}

		cd.Timer.Tick(delta)
		if cd.Timer.Finished() {
			delete(s.cooldowns, ownerID)
			expired = append(expired, ownerID)
		}
	}

	return expired
}

// holderOf resolves the actor holding the owner, trying abilities before slots
func (s *service) holderOf(ownerID string) (*entities.Actor, bool) {
	if actor, ok := s.world.AbilityHolder(ownerID); ok {
		return actor, true
	}
	return s.world.SlotHolder(ownerID)
}

func (s *service) Cleanup() int {
	removed := 0
	for ownerID, cd := range s.cooldowns {
		if !cd.Timer.Finished() {
			continue
		}
		s.logger.Warn("finished cooldown still attached, removing", "owner_id", ownerID)
		delete(s.cooldowns, ownerID)
		removed++
	}
	return removed
}

func (s *service) Remove(ownerIDs ...string) {
	for _, id := range ownerIDs {
		delete(s.cooldowns, id)
	}
}
