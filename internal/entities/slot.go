package entities

import "time"

// SlotType gates which abilities a slot can cast
type SlotType string

const (
	SlotTypeWeaponAttack SlotType = "weapon_attack"
	SlotTypeShieldDefend SlotType = "shield_defend"
	SlotTypeMagic        SlotType = "magic"
)

// Slot is a socket on an actor that abilities are cast through
type Slot struct {
	ID   string   `json:"id"`
	Type SlotType `json:"type"`

	// OnUseCooldown is applied to the slot itself when a cast starts on it. Zero means none.
	OnUseCooldown time.Duration `json:"on_use_cooldown,omitempty"`
}
