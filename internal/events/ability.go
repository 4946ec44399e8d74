package events

import (
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// AbilityRejectedEvent is emitted when validation tags a request. Reasons holds every
// failed check, Reason the first one.
type AbilityRejectedEvent struct {
	BaseEvent
	CasterID  string
	SlotID    string
	AbilityID string
	Origin    entities.Origin
	Reason    string
	Reasons   []string
}

// AbilityPerformedEvent is emitted after an ability handler ran for a finished cast
type AbilityPerformedEvent struct {
	BaseEvent
	CasterID    string
	AbilityID   string
	AbilityKind entities.AbilityKind
	TargetID    *string
}
