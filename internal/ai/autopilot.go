package ai

import (
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/services/ability"
	"github.com/KirkDiggler/skirmish/internal/services/cast"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// DefaultRotation is the order the autopilot tries abilities in
var DefaultRotation = []entities.AbilityKind{
	entities.AbilityKindPreparedBlock,
	entities.AbilityKindNeedlingHex,
	entities.AbilityKindChargedStrike,
	entities.AbilityKindAttack,
}

// Autopilot plays a user controlled actor for headless runs. Its commands carry the
// user interaction origin, so the first one starts the fight clock like a real player
// would.
type Autopilot struct {
	world     *world.Registry
	abilities ability.Service
	casts     cast.Service
	rotation  []entities.AbilityKind
	logger    *slog.Logger
}

// AutopilotConfig holds the autopilot's collaborators
type AutopilotConfig struct {
	World          *world.Registry
	AbilityService ability.Service
	CastService    cast.Service
	Rotation       []entities.AbilityKind
	Logger         *slog.Logger
}

// NewAutopilot creates a new autopilot
func NewAutopilot(cfg *AutopilotConfig) *Autopilot {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.AbilityService == nil {
		panic("ability service is required")
	}
	if cfg.CastService == nil {
		panic("cast service is required")
	}

	a := &Autopilot{
		world:     cfg.World,
		abilities: cfg.AbilityService,
		casts:     cfg.CastService,
		rotation:  cfg.Rotation,
		logger:    cfg.Logger,
	}
	if len(a.rotation) == 0 {
		a.rotation = DefaultRotation
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.logger = a.logger.With("component", "autopilot")

	return a
}

// Next returns the first ability in the rotation the actor could cast right now against
// targetID, through a slot that is not already casting
func (a *Autopilot) Next(fightID, actorID, targetID string) (*ability.UseAbilityCommand, bool) {
	actor, ok := a.world.Actor(actorID)
	if !ok || !actor.IsAlive() {
		return nil, false
	}

	held := a.world.AbilitiesOf(actorID)
	slots := a.world.SlotsOf(actorID)

	for _, kind := range a.rotation {
		for _, inst := range held {
			if inst.Kind != kind {
				continue
			}
			for _, slot := range slots {
				if a.casts.IsCasting(slot.ID) || !a.abilities.CanCastOnSlot(slot.ID, inst.RequiredSlot) {
					continue
				}

				req := &ability.UseAbilityRequest{
					FightID:   fightID,
					CasterID:  actorID,
					SlotID:    slot.ID,
					AbilityID: inst.ID,
					TargetID:  &targetID,
				}
				v, err := a.abilities.Validate(req)
				if err != nil {
					a.logger.Warn("autopilot request invalid", "actor_id", actorID, "error", err)
					return nil, false
				}
				if !v.IsRejected() {
					return &ability.UseAbilityCommand{Request: req, Origin: entities.OriginUserInteraction}, true
				}
			}
		}
	}

	return nil, false
}
