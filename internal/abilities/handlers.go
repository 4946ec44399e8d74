package abilities

import (
	"github.com/KirkDiggler/skirmish/internal/effects"
	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/services/ability"
	"github.com/KirkDiggler/skirmish/internal/services/damage"
)

// DirectDamageHandler performs abilities that hit their target once
type DirectDamageHandler struct {
	kind   entities.AbilityKind
	amount float64
	damage damage.Service
}

// NewDirectDamageHandler creates a handler dealing amount to the request's target
func NewDirectDamageHandler(kind entities.AbilityKind, amount float64, dmg damage.Service) *DirectDamageHandler {
	return &DirectDamageHandler{kind: kind, amount: amount, damage: dmg}
}

func (h *DirectDamageHandler) Key() entities.AbilityKind { return h.kind }

func (h *DirectDamageHandler) Perform(input *ability.PerformInput) error {
	if input.TargetID == nil {
		return simerr.InvalidArgumentf("%s needs a target", h.kind)
	}

	h.damage.Deal(entities.DamageInstance{
		SourceID: input.Caster.ID,
		TargetID: *input.TargetID,
		Amount:   h.amount,
	})
	return nil
}

// EffectHandler performs abilities that put a unique effect on someone
type EffectHandler struct {
	kind    entities.AbilityKind
	builder *effects.Builder
	effects *effects.Manager
	onSelf  bool
}

// NewEffectHandler creates a handler spawning the builder's effect on the target, or on
// the caster when onSelf is set
func NewEffectHandler(kind entities.AbilityKind, builder *effects.Builder, fx *effects.Manager, onSelf bool) *EffectHandler {
	return &EffectHandler{kind: kind, builder: builder, effects: fx, onSelf: onSelf}
}

func (h *EffectHandler) Key() entities.AbilityKind { return h.kind }

func (h *EffectHandler) Perform(input *ability.PerformInput) error {
	targetID := input.Caster.ID
	if !h.onSelf {
		if input.TargetID == nil {
			return simerr.InvalidArgumentf("%s needs a target", h.kind)
		}
		targetID = *input.TargetID
	}

	inst := h.builder.Build()
	inst.SourceID = input.Caster.ID

	if _, err := h.effects.SpawnOrReplace(targetID, inst); err != nil {
		return simerr.Wrapf(err, "failed to apply %s", inst.Kind)
	}
	return nil
}

// DamagePerTick is the behavior of damage over time effects: one damage instance of the
// effect's magnitude per fresh tick
func DamagePerTick(dmg damage.Service) effects.Behavior {
	return effects.BehaviorFunc(func(inst *effects.Instance, targetID string, fresh uint32) {
		for range fresh {
			dmg.Deal(entities.DamageInstance{
				SourceID: inst.SourceID,
				TargetID: targetID,
				Amount:   inst.Magnitude,
			})
		}
	})
}

// Register wires the handler of every built-in ability and the behavior of every
// built-in effect
func Register(svc ability.Service, fx *effects.Manager, dmg damage.Service) {
	svc.RegisterHandler(NewDirectDamageHandler(entities.AbilityKindAttack, AttackDamage, dmg))
	svc.RegisterHandler(NewDirectDamageHandler(entities.AbilityKindChargedStrike, ChargedStrikeDamage, dmg))

	svc.RegisterHandler(NewEffectHandler(entities.AbilityKindNeedlingHex,
		effects.NewBuilder(effects.KindNeedlingHex).
			WithTicks(NeedlingHexTickInterval, NeedlingHexNumTicks).
			WithMagnitude(NeedlingHexDamagePerTick),
		fx, false))

	svc.RegisterHandler(NewEffectHandler(entities.AbilityKindPreparedBlock,
		effects.NewBuilder(effects.KindPreparedBlock).
			WithTicks(PreparedBlockTickInterval, PreparedBlockNumTicks).
			WithMagnitude(PreparedBlockAbsorb),
		fx, true))

	// prepared blocks only hold their window open; damage resolution consumes them
	fx.RegisterBehavior(effects.KindNeedlingHex, DamagePerTick(dmg))
}
