// Package ability validates cast requests, starts the casts that pass and performs
// abilities once their casts finish.
package ability

//go:generate mockgen -destination=mock/mock_service.go -package=mockability -source=service.go

import (
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/services/cast"
	"github.com/KirkDiggler/skirmish/internal/services/cooldown"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Service defines the ability service interface
type Service interface {
	// Validate runs every check against a request. Rejections are reported on the
	// returned Validation; an error means the request is nil or names an unknown fight.
	// A caster, slot or ability that does not resolve fails the slot requirement check.
	Validate(req *UseAbilityRequest) (*Validation, error)

	// Process validates a command and, when no check failed, cancels the slot's current
	// cast, applies the slot's on-use cooldown and records the new cast, in that order
	Process(cmd *UseAbilityCommand) (*Validation, error)

	// Complete applies the ability cooldown of each finished cast and queues its perform
	Complete(finished []*cast.OngoingCast)

	// RunPending performs every ability whose cast finished since the last call and
	// returns what was performed
	RunPending() []*PerformInput

	// PendingPerforms returns how many finished casts wait to be performed
	PendingPerforms() int

	// RegisterHandler adds the handler for an ability kind
	RegisterHandler(handler Handler)

	// IsMatchingCast reports whether the request casts an ability of the given kind
	IsMatchingCast(req *UseAbilityRequest, kind entities.AbilityKind) bool

	// CanCastOnSlot reports whether the slot exists and satisfies the required type.
	// A nil requirement accepts any slot.
	CanCastOnSlot(slotID string, required *entities.SlotType) bool

	// InterruptCastOnSlot aborts the cast on a slot, if any
	InterruptCastOnSlot(slotID string) bool
}

type pendingPerform struct {
	fightID   string
	casterID  string
	abilityID string
	targetID  *string
}

type service struct {
	world     *world.Registry
	casts     cast.Service
	cooldowns cooldown.Service
	bus       *events.Bus
	registry  *HandlerRegistry
	logger    *slog.Logger

	pending []pendingPerform
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	World           *world.Registry
	CastService     cast.Service
	CooldownService cooldown.Service
	Bus             *events.Bus
	Logger          *slog.Logger
}

// NewService creates a new ability service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.CastService == nil {
		panic("cast service is required")
	}
	if cfg.CooldownService == nil {
		panic("cooldown service is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	svc := &service{
		world:     cfg.World,
		casts:     cfg.CastService,
		cooldowns: cfg.CooldownService,
		bus:       cfg.Bus,
		registry:  NewHandlerRegistry(),
		logger:    cfg.Logger,
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	svc.logger = svc.logger.With("service", "ability")

	return svc
}

// RegisterHandler allows external packages to register ability handlers
func (s *service) RegisterHandler(handler Handler) {
	s.registry.Register(handler)
}

func (s *service) Validate(req *UseAbilityRequest) (*Validation, error) {
	r, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	v := &Validation{Request: req}
	for _, c := range s.checks() {
		if reason, ok := c(r); !ok {
			v.Reasons = append(v.Reasons, reason)
		}
	}

	return v, nil
}

func (s *service) resolve(req *UseAbilityRequest) (*resolved, error) {
	if req == nil {
		return nil, simerr.InvalidArgument("request cannot be nil")
	}

	fight, ok := s.world.Fight(req.FightID)
	if !ok {
		return nil, simerr.NotFoundf("fight %s not found", req.FightID)
	}

	r := &resolved{request: req, fight: fight}

	caster, ok := s.world.Actor(req.CasterID)
	if !ok {
		return r, nil
	}
	r.caster = caster

	if holder, ok := s.world.AbilityHolder(req.AbilityID); ok && holder.ID == caster.ID {
		r.ability, _ = s.world.Ability(req.AbilityID)
	}
	if holder, ok := s.world.SlotHolder(req.SlotID); ok && holder.ID == caster.ID {
		r.slot, _ = s.world.Slot(req.SlotID)
	}

	return r, nil
}

func (s *service) Process(cmd *UseAbilityCommand) (*Validation, error) {
	if cmd == nil || cmd.Request == nil {
		return nil, simerr.InvalidArgument("command cannot be nil")
	}

	v, err := s.Validate(cmd.Request)
	if err != nil {
		return nil, err
	}

	if v.IsRejected() {
		s.reject(cmd, v)
		return v, nil
	}

	req := cmd.Request
	slot, _ := s.world.Slot(req.SlotID)
	ability, _ := s.world.Ability(req.AbilityID)

	s.casts.Cancel(slot.ID)
	s.cooldowns.Start(slot.ID, slot.OnUseCooldown)

	if _, err := s.casts.Start(&cast.StartInput{
		FightID:  req.FightID,
		CasterID: req.CasterID,
		SlotID:   slot.ID,
		Ability:  ability,
		TargetID: req.TargetID,
	}); err != nil {
		return nil, simerr.Wrap(err, "failed to start cast")
	}

	s.logger.Debug("cast started",
		"fight_id", req.FightID, "caster_id", req.CasterID, "ability", ability.Kind, "origin", cmd.Origin)

	return v, nil
}

func (s *service) reject(cmd *UseAbilityCommand, v *Validation) {
	req := cmd.Request
	s.logger.Debug("ability rejected",
		"fight_id", req.FightID, "caster_id", req.CasterID, "ability_id", req.AbilityID,
		"reason", v.Reason(), "origin", cmd.Origin)

	reasons := make([]string, 0, len(v.Reasons))
	for _, r := range v.Reasons {
		reasons = append(reasons, string(r))
	}

	err := s.bus.Emit(&events.AbilityRejectedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAbilityRejected, FightID: req.FightID},
		CasterID:  req.CasterID,
		SlotID:    req.SlotID,
		AbilityID: req.AbilityID,
		Origin:    cmd.Origin,
		Reason:    string(v.Reason()),
		Reasons:   reasons,
	})
	if err != nil {
		s.logger.Error("rejection listener failed", "error", err)
	}
}

func (s *service) Complete(finished []*cast.OngoingCast) {
	for _, c := range finished {
		ability, ok := s.world.Ability(c.AbilityID)
		if !ok {
			s.logger.Warn("finished cast of unknown ability", "ability_id", c.AbilityID)
			continue
		}

		s.cooldowns.Start(ability.ID, ability.Cooldown)
		s.pending = append(s.pending, pendingPerform{
			fightID:   c.FightID,
			casterID:  c.CasterID,
			abilityID: ability.ID,
			targetID:  c.TargetID,
		})
	}
}

func (s *service) PendingPerforms() int {
	return len(s.pending)
}

func (s *service) RunPending() []*PerformInput {
	pending := s.pending
	s.pending = nil

	var performed []*PerformInput
	for _, p := range pending {
		input, ok := s.performInput(p)
		if !ok {
			continue
		}

		handler, ok := s.registry.Get(input.Ability.Kind)
		if !ok {
			s.logger.Warn("no handler for ability kind", "kind", input.Ability.Kind)
			continue
		}

		if err := handler.Perform(input); err != nil {
			s.logger.Error("ability perform failed",
				"kind", input.Ability.Kind, "caster_id", input.Caster.ID, "error", err)
			continue
		}

		s.emitPerformed(input)
		performed = append(performed, input)
	}

	return performed
}

func (s *service) performInput(p pendingPerform) (*PerformInput, bool) {
	fight, ok := s.world.Fight(p.fightID)
	if !ok || fight.IsEnded() {
		return nil, false
	}

	caster, ok := s.world.Actor(p.casterID)
	if !ok || !caster.IsAlive() {
		return nil, false
	}

	ability, ok := s.world.Ability(p.abilityID)
	if !ok {
		return nil, false
	}

	return &PerformInput{
		FightID:  fight.ID,
		Caster:   caster,
		Ability:  ability,
		TargetID: p.targetID,
	}, true
}

func (s *service) emitPerformed(input *PerformInput) {
	err := s.bus.Emit(&events.AbilityPerformedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeAbilityPerformed, FightID: input.FightID},
		CasterID:    input.Caster.ID,
		AbilityID:   input.Ability.ID,
		AbilityKind: input.Ability.Kind,
		TargetID:    input.TargetID,
	})
	if err != nil {
		s.logger.Error("perform listener failed", "error", err)
	}
}

func (s *service) IsMatchingCast(req *UseAbilityRequest, kind entities.AbilityKind) bool {
	if req == nil {
		return false
	}
	ability, ok := s.world.Ability(req.AbilityID)
	return ok && ability.Kind == kind
}

func (s *service) CanCastOnSlot(slotID string, required *entities.SlotType) bool {
	slot, ok := s.world.Slot(slotID)
	return ok && slotSatisfies(slot, required)
}

func (s *service) InterruptCastOnSlot(slotID string) bool {
	return s.casts.Cancel(slotID)
}
