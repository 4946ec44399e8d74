package ability

import (
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// resolved is a request with its references looked up. Only the fight is required.
// Caster is nil when it does not resolve; slot and ability are nil unless the caster
// holds them.
type resolved struct {
	request *UseAbilityRequest
	fight   *entities.Fight
	caster  *entities.Actor
	slot    *entities.Slot
	ability *entities.AbilityInstance
}

// check tags a request with a reason when it fails
type check func(r *resolved) (RejectionReason, bool)

// checks returns the validation pipeline in reporting order
func (s *service) checks() []check {
	return []check{
		s.checkFightEnded,
		s.checkCooldowns,
		s.checkSlotRequirement,
	}
}

func (s *service) checkFightEnded(r *resolved) (RejectionReason, bool) {
	if r.fight.IsEnded() {
		return RejectionFightEnded, false
	}
	return "", true
}

func (s *service) checkCooldowns(r *resolved) (RejectionReason, bool) {
	if r.ability != nil && s.cooldowns.IsOnCooldown(r.ability.ID) {
		return RejectionAbilityOrSlotOnCooldown, false
	}
	if s.cooldowns.IsOnCooldown(r.request.SlotID) {
		return RejectionAbilityOrSlotOnCooldown, false
	}
	return "", true
}

func (s *service) checkSlotRequirement(r *resolved) (RejectionReason, bool) {
	if r.slot == nil || r.ability == nil || !slotSatisfies(r.slot, r.ability.RequiredSlot) {
		return RejectionSlotRequirementMismatch, false
	}
	return "", true
}

func slotSatisfies(slot *entities.Slot, required *entities.SlotType) bool {
	return required == nil || slot.Type == *required
}
