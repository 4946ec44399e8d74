package entities

// Faction groups actors that fight on the same side
type Faction string

const (
	FactionPlayer Faction = "player"
	FactionEnemy  Faction = "enemy"
)

// Actor is a combatant. Slots, abilities and fight membership live in the world registry.
type Actor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Faction      Faction `json:"faction"`
	Health       *Health `json:"health"`
	AIControlled bool    `json:"ai_controlled"`
}

// IsAlive reports whether the actor still has health left
func (a *Actor) IsAlive() bool {
	return a.Health != nil && a.Health.IsAlive()
}

// Health tracks current and maximum hit points
type Health struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// NewHealth creates a full health pool
func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

func (h *Health) IsAlive() bool {
	return h.Current > 0
}

func (h *Health) IsDead() bool {
	return !h.IsAlive()
}

// ApplyDamage reduces current health, never below zero. It returns true when
// this damage took the actor from alive to dead.
func (h *Health) ApplyDamage(amount float64) bool {
	if amount <= 0 || h.IsDead() {
		return false
	}

	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}
