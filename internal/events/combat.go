package events

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// DamageDealtEvent is emitted once damage has been applied to a target's health
type DamageDealtEvent struct {
	BaseEvent
	Damage   entities.DamageInstance
	Absorbed float64
	Applied  float64
}

// ActorDiedEvent is the liveness change signal: an actor went from alive to dead
type ActorDiedEvent struct {
	BaseEvent
	ActorID string
	Faction entities.Faction
}

// FightEndedEvent is emitted once when a fight records its result
type FightEndedEvent struct {
	BaseEvent
	Winner  entities.Faction
	Elapsed time.Duration
}

// EffectEvent is emitted when a unique effect is applied or expires
type EffectEvent struct {
	BaseEvent
	InstanceID string
	Kind       string
	TargetID   string
	SourceID   string
	Replaced   bool
}
