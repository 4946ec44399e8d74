package entities

// DamageInstance is a request to deal damage. SourceID is empty for sourceless damage.
type DamageInstance struct {
	SourceID string  `json:"source_id,omitempty"`
	TargetID string  `json:"target_id"`
	Amount   float64 `json:"amount"`
}
