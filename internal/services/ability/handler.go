package ability

import "github.com/KirkDiggler/skirmish/internal/entities"

// Handler defines the interface for ability handlers.
// Each ability kind in the catalog implements one.
type Handler interface {
	// Key returns the ability kind this handler performs
	Key() entities.AbilityKind

	// Perform applies the ability's effect: queue damage, spawn effects
	Perform(input *PerformInput) error
}
