package events

// Event type constants
const (
	// Cast lifecycle
	EventTypeCastStarted  EventType = "cast.started"
	EventTypeCastAborted  EventType = "cast.aborted"
	EventTypeCastFinished EventType = "cast.finished"

	// Ability resolution
	EventTypeAbilityRejected  EventType = "ability.rejected"
	EventTypeAbilityPerformed EventType = "ability.performed"

	// Effects
	EventTypeEffectApplied EventType = "effect.applied"
	EventTypeEffectExpired EventType = "effect.expired"

	// Combat
	EventTypeDamageDealt EventType = "damage.dealt"
	EventTypeActorDied   EventType = "actor.died"
	EventTypeFightEnded  EventType = "fight.ended"
)

// Priority levels for listener order. Lower runs first.
const (
	PriorityObservers = 0    // Reporting and logging, read only
	PriorityDefault   = 100  // Regular reactions
	PriorityFollowUp  = 1000 // Work that must happen after every other listener saw the event
)
