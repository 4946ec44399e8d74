package events

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// CastEvent is emitted for every transition of an ongoing cast. On abort it is emitted
// while the cast is still recorded on its slot.
type CastEvent struct {
	BaseEvent
	CastID      string
	CasterID    string
	SlotID      string
	AbilityID   string
	AbilityKind entities.AbilityKind
	TargetID    *string

	// Remaining is the countdown left when the event fired. Zero on finish.
	Remaining time.Duration
}

// NewCastEvent creates a cast event of the given type
func NewCastEvent(eventType EventType, fightID string) *CastEvent {
	return &CastEvent{BaseEvent: BaseEvent{Type: eventType, FightID: fightID}}
}
