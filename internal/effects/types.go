// Package effects runs unique timed effects. A target holds at most one live instance
// per effect Kind. Applying the same Kind again replaces the old instance instead of
// stacking it. What an instance does when it ticks is looked up per Kind in a behavior
// registry.
package effects

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/timer"
)

// Kind identifies an effect type
type Kind string

const (
	KindNeedlingHex   Kind = "needling_hex"   // Damage over time
	KindPreparedBlock Kind = "prepared_block" // Absorbs part of the next hit while it lasts
)

// Instance is one live effect on a target
type Instance struct {
	ID       string
	Kind     Kind
	SourceID string

	// Magnitude is Kind specific: damage per tick for hexes, absorb amount for blocks
	Magnitude float64

	Timer *timer.FiniteRepeating
}

// RemainingTime is the time until the last tick of the instance
func (i *Instance) RemainingTime() time.Duration {
	return i.Timer.RemainingTime()
}

// Behavior is what an effect Kind does when its timer ticks
type Behavior interface {
	// OnFreshTicks is called once per Tick in which the instance produced fresh ticks
	OnFreshTicks(instance *Instance, targetID string, fresh uint32)
}

// BehaviorFunc adapts a function into a Behavior
type BehaviorFunc func(instance *Instance, targetID string, fresh uint32)

// OnFreshTicks calls f
func (f BehaviorFunc) OnFreshTicks(instance *Instance, targetID string, fresh uint32) {
	f(instance, targetID, fresh)
}

// PauseResolver tells whether the fight an actor belongs to is paused
type PauseResolver interface {
	IsActorPaused(actorID string) bool
}
