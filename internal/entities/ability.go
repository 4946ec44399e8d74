package entities

import "time"

// AbilityKind identifies an ability definition in the catalog
type AbilityKind string

const (
	AbilityKindAttack        AbilityKind = "attack"
	AbilityKindNeedlingHex   AbilityKind = "needling_hex"
	AbilityKindChargedStrike AbilityKind = "charged_strike"
	AbilityKindPreparedBlock AbilityKind = "prepared_block"
)

// AbilityInstance is the runtime copy of an ability held by one actor
type AbilityInstance struct {
	ID          string      `json:"id"`
	Kind        AbilityKind `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`

	// RequiredSlot restricts the slot type the ability can be cast from. Nil means any slot.
	RequiredSlot *SlotType `json:"required_slot,omitempty"`

	// Cooldown is applied to the ability once a cast finishes successfully
	Cooldown time.Duration `json:"cooldown,omitempty"`

	// CastTime is zero for instant abilities
	CastTime time.Duration `json:"cast_time,omitempty"`
}

// IsInstant reports whether the ability finishes on the first tick after it starts
func (a *AbilityInstance) IsInstant() bool {
	return a.CastTime <= 0
}

// RequiresSlot is a helper for building AbilityInstance.RequiredSlot
func RequiresSlot(t SlotType) *SlotType {
	return &t
}
