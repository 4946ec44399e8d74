// Package simulation drives the combat services in a fixed phase order, one step at a
// time. A step never reads the wall clock: callers pass the step duration in.
package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/services"
	"github.com/KirkDiggler/skirmish/internal/services/ability"
)

// DefaultStep is 1/64 of a second
const DefaultStep = 15625 * time.Microsecond

// Engine owns one world and advances it
type Engine struct {
	*services.Provider

	step   time.Duration
	logger *slog.Logger

	steps       uint64
	accumulator time.Duration
	intake      []*ability.UseAbilityCommand
	recorder    *recorder
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	// Provider defaults to a fresh provider with random ids
	Provider *services.Provider

	// Step is the fixed duration Advance moves the world by. Defaults to DefaultStep.
	Step time.Duration

	Logger *slog.Logger
}

// NewEngine creates a new engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	provider := cfg.Provider
	if provider == nil {
		provider = services.NewProvider(&services.ProviderConfig{Logger: logger})
	}

	step := cfg.Step
	if step <= 0 {
		step = DefaultStep
	}

	e := &Engine{
		Provider: provider,
		step:     step,
		logger:   logger.With("component", "engine"),
		recorder: &recorder{},
	}
	provider.Bus.Subscribe(events.EventTypeCastStarted, e.recorder)
	provider.Bus.Subscribe(events.EventTypeCastAborted, e.recorder)

	return e
}

// StepDuration returns the fixed step used by Advance
func (e *Engine) StepDuration() time.Duration {
	return e.step
}

// Steps returns how many steps ran so far
func (e *Engine) Steps() uint64 {
	return e.steps
}

// Submit queues a command for the next step's intake
func (e *Engine) Submit(cmd *ability.UseAbilityCommand) {
	if cmd == nil || cmd.Request == nil {
		return
	}
	e.intake = append(e.intake, cmd)
}

// Step runs every phase once with the given delta
func (e *Engine) Step(delta time.Duration) *StepReport {
	e.steps++
	report := &StepReport{Step: e.steps, Delta: delta}
	e.recorder.current = report
	defer func() { e.recorder.current = nil }()

	// AI decisions join the intake behind the submitted commands
	commands := append(e.intake, e.AI.Think()...)
	e.intake = nil
	report.Commands = len(commands)

	// intake: user commands start the clock before anything validates
	accepted := commands[:0]
	for _, cmd := range commands {
		if err := e.FightService.HandleCommand(cmd.Request.FightID, cmd.Origin); err != nil {
			e.logger.Warn("dropping command", "fight_id", cmd.Request.FightID, "error", err)
			report.Errors = append(report.Errors, err)
			continue
		}
		accepted = append(accepted, cmd)
	}

	for _, cmd := range accepted {
		v, err := e.AbilityService.Process(cmd)
		if err != nil {
			report.Errors = append(report.Errors, err)
			continue
		}
		if v.IsRejected() {
			report.Rejections = append(report.Rejections, v)
		}
	}

	report.Performed = e.AbilityService.RunPending()

	e.FightService.Tick(delta)
	e.CooldownService.Tick(delta)
	report.ExpiredEffects = e.Effects.Tick(delta)
	report.CastsFinished = e.CastService.Tick(delta)
	e.AbilityService.Complete(report.CastsFinished)

	report.Damage = e.DamageService.Resolve()
	for _, applied := range report.Damage {
		if applied.Killed {
			report.Deaths = append(report.Deaths, applied.Damage.TargetID)
			e.FightService.NoteDeath(applied.Damage.TargetID)
		}
	}

	ended, err := e.FightService.CheckEnd()
	if err != nil {
		e.logger.Error("end check failed", "step", e.steps, "error", err)
		report.Errors = append(report.Errors, err)
	}
	report.EndedFights = ended

	e.CooldownService.Cleanup()
	e.CastService.Cleanup()
	e.Effects.Cleanup()

	return report
}

// Advance feeds elapsed time into a fixed step accumulator and runs as many whole
// steps as it covers. The remainder carries over to the next call.
func (e *Engine) Advance(elapsed time.Duration) []*StepReport {
	if elapsed > 0 {
		e.accumulator += elapsed
	}

	var reports []*StepReport
	for e.accumulator >= e.step {
		e.accumulator -= e.step
		reports = append(reports, e.Step(e.step))
	}

	return reports
}

// RunUntilEnded steps until every fight has ended, limit of simulated time passed or
// ctx is done. It returns the simulated time. each, when set, sees every step report.
func (e *Engine) RunUntilEnded(ctx context.Context, limit time.Duration, each func(*StepReport)) (time.Duration, error) {
	var simulated time.Duration
	for simulated < limit && !e.allEnded() {
		if err := ctx.Err(); err != nil {
			return simulated, err
		}

		report := e.Step(e.step)
		simulated += e.step
		if each != nil {
			each(report)
		}
	}
	return simulated, nil
}

func (e *Engine) allEnded() bool {
	for _, fight := range e.World.Fights() {
		if !fight.IsEnded() {
			return false
		}
	}
	return true
}

// DespawnFight removes a fight with its actors. Casts in progress are aborted while the
// actors still exist; cooldowns and effects that belonged to them are dropped.
func (e *Engine) DespawnFight(fightID string) error {
	if fightID == "" {
		return simerr.InvalidArgument("fight ID is required")
	}

	for _, actor := range e.World.Members(fightID) {
		for _, slot := range e.World.SlotsOf(actor.ID) {
			e.CastService.Cancel(slot.ID)
		}
	}

	gone, err := e.World.DespawnFight(fightID)
	if err != nil {
		return err
	}

	e.CastService.Remove(gone.SlotIDs...)
	e.CooldownService.Remove(gone.SlotIDs...)
	e.CooldownService.Remove(gone.AbilityIDs...)
	for _, actorID := range gone.ActorIDs {
		e.Effects.RemoveTarget(actorID)
	}

	kept := e.intake[:0]
	for _, cmd := range e.intake {
		if cmd.Request.FightID != fightID {
			kept = append(kept, cmd)
		}
	}
	e.intake = kept

	e.logger.Info("fight despawned", "fight_id", fightID, "actors", len(gone.ActorIDs))
	return nil
}

// Autoplay submits the autopilot's next command for every living actor of the fight
// that is not AI controlled, aimed at the first living opponent
func (e *Engine) Autoplay(fightID string) int {
	members := e.World.Members(fightID)

	submitted := 0
	for _, actor := range members {
		if actor.AIControlled || !actor.IsAlive() {
			continue
		}

		target := firstOpponent(members, actor)
		if target == nil {
			continue
		}

		if cmd, ok := e.Autopilot.Next(fightID, actor.ID, target.ID); ok {
			e.Submit(cmd)
			submitted++
		}
	}

	return submitted
}

func firstOpponent(members []*entities.Actor, actor *entities.Actor) *entities.Actor {
	for _, other := range members {
		if other.Faction != actor.Faction && other.IsAlive() {
			return other
		}
	}
	return nil
}
