package ability

import (
	"fmt"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
)

// UseAbilityRequest asks for a cast of an ability through one of the caster's slots
type UseAbilityRequest struct {
	FightID   string
	CasterID  string
	SlotID    string
	AbilityID string
	TargetID  *string // Optional
}

// UseAbilityCommand is a request together with where it came from
type UseAbilityCommand struct {
	Request *UseAbilityRequest
	Origin  entities.Origin
}

// RejectionReason tags a request that failed a validation check
type RejectionReason string

const (
	RejectionFightEnded              RejectionReason = "fight_ended"
	RejectionAbilityOrSlotOnCooldown RejectionReason = "ability_or_slot_on_cooldown"
	RejectionSlotRequirementMismatch RejectionReason = "slot_requirement_mismatch"
)

// Validation is the outcome of running every check against a request. Every failed
// check is recorded; the first one is the reported reason.
type Validation struct {
	Request *UseAbilityRequest
	Reasons []RejectionReason
}

// IsRejected reports whether any check failed
func (v *Validation) IsRejected() bool {
	return len(v.Reasons) > 0
}

// Reason returns the first failed check, empty when the request passed
func (v *Validation) Reason() RejectionReason {
	if len(v.Reasons) == 0 {
		return ""
	}
	return v.Reasons[0]
}

// Has reports whether a specific check failed
func (v *Validation) Has(reason RejectionReason) bool {
	for _, r := range v.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Err converts a rejected validation into a failed precondition error, nil otherwise
func (v *Validation) Err() error {
	if !v.IsRejected() {
		return nil
	}
	return simerr.FailedPreconditionf("ability %s rejected: %s", v.Request.AbilityID, v.Reason()).
		WithMeta("reason", string(v.Reason())).
		WithMeta("slot_id", v.Request.SlotID)
}

func (v *Validation) String() string {
	if !v.IsRejected() {
		return fmt.Sprintf("ability %s accepted", v.Request.AbilityID)
	}
	return fmt.Sprintf("ability %s rejected: %v", v.Request.AbilityID, v.Reasons)
}

// PerformInput is what a handler receives once a cast finished
type PerformInput struct {
	FightID  string
	Caster   *entities.Actor
	Ability  *entities.AbilityInstance
	TargetID *string // Optional
}
