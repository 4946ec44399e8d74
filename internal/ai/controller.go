// Package ai produces commands for AI controlled actors. The only behavior is
// "attack the one enemy left standing whenever the attack would validate".
package ai

import (
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/services/ability"
	"github.com/KirkDiggler/skirmish/internal/services/fight"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Controller decides what AI actors do each step
type Controller struct {
	world     *world.Registry
	fights    fight.Service
	abilities ability.Service
	logger    *slog.Logger
}

// ControllerConfig holds the controller's collaborators
type ControllerConfig struct {
	World          *world.Registry
	FightService   fight.Service
	AbilityService ability.Service
	Logger         *slog.Logger
}

// NewController creates a new AI controller
func NewController(cfg *ControllerConfig) *Controller {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.FightService == nil {
		panic("fight service is required")
	}
	if cfg.AbilityService == nil {
		panic("ability service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		world:     cfg.World,
		fights:    cfg.FightService,
		abilities: cfg.AbilityService,
		logger:    logger.With("component", "ai"),
	}
}

// Think returns the commands AI actors want to submit this step
func (c *Controller) Think() []*ability.UseAbilityCommand {
	var commands []*ability.UseAbilityCommand

	for _, f := range c.world.Fights() {
		if f.IsEnded() || c.fights.IsPaused(f.ID) {
			continue
		}

		for _, actor := range c.world.Members(f.ID) {
			if !actor.AIControlled || !actor.IsAlive() {
				continue
			}
			if cmd, ok := c.attack(f.ID, actor); ok {
				commands = append(commands, cmd)
			}
		}
	}

	return commands
}

func (c *Controller) attack(fightID string, actor *entities.Actor) (*ability.UseAbilityCommand, bool) {
	attack := c.findAbility(actor.ID, entities.AbilityKindAttack)
	if attack == nil {
		return nil, false
	}
	slot := c.findSlot(actor.ID, entities.SlotTypeWeaponAttack)
	if slot == nil {
		return nil, false
	}
	target := c.singleEnemy(fightID, actor)
	if target == nil {
		return nil, false
	}

	req := &ability.UseAbilityRequest{
		FightID:   fightID,
		CasterID:  actor.ID,
		SlotID:    slot.ID,
		AbilityID: attack.ID,
		TargetID:  &target.ID,
	}

	v, err := c.abilities.Validate(req)
	if err != nil {
		c.logger.Warn("ai attack could not be validated", "actor_id", actor.ID, "error", err)
		return nil, false
	}
	if v.IsRejected() {
		return nil, false
	}

	return &ability.UseAbilityCommand{Request: req, Origin: entities.OriginAIAction}, true
}

func (c *Controller) findAbility(actorID string, kind entities.AbilityKind) *entities.AbilityInstance {
	for _, a := range c.world.AbilitiesOf(actorID) {
		if a.Kind == kind {
			return a
		}
	}
	return nil
}

func (c *Controller) findSlot(actorID string, slotType entities.SlotType) *entities.Slot {
	for _, s := range c.world.SlotsOf(actorID) {
		if s.Type == slotType {
			return s
		}
	}
	return nil
}

// singleEnemy returns the only living member of another faction, nil if there are
// none or several
func (c *Controller) singleEnemy(fightID string, actor *entities.Actor) *entities.Actor {
	var enemy *entities.Actor
	for _, other := range c.world.Members(fightID) {
		if other.Faction == actor.Faction || !other.IsAlive() {
			continue
		}
		if enemy != nil {
			return nil
		}
		enemy = other
	}
	return enemy
}
