package simulation

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/effects"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/services/ability"
	"github.com/KirkDiggler/skirmish/internal/services/cast"
	"github.com/KirkDiggler/skirmish/internal/services/damage"
)

// StepReport is what happened during one simulation step
type StepReport struct {
	Step  uint64
	Delta time.Duration

	// Commands is how many commands entered intake, AI ones included
	Commands   int
	Rejections []*ability.Validation
	Errors     []error

	CastsStarted  []*events.CastEvent
	CastsAborted  []*events.CastEvent
	CastsFinished []*cast.OngoingCast

	Performed      []*ability.PerformInput
	Damage         []*damage.Applied
	Deaths         []string
	ExpiredEffects []*effects.Instance
	EndedFights    []*entities.Fight
}

// DamageTo sums the damage dealt to an actor during the step
func (r *StepReport) DamageTo(actorID string) float64 {
	var total float64
	for _, applied := range r.Damage {
		if applied.Damage.TargetID == actorID {
			total += applied.Dealt
		}
	}
	return total
}

// Empty reports whether nothing observable happened
func (r *StepReport) Empty() bool {
	return r.Commands == 0 &&
		len(r.Errors) == 0 &&
		len(r.CastsStarted) == 0 &&
		len(r.CastsAborted) == 0 &&
		len(r.CastsFinished) == 0 &&
		len(r.Performed) == 0 &&
		len(r.Damage) == 0 &&
		len(r.ExpiredEffects) == 0 &&
		len(r.EndedFights) == 0
}

// recorder captures bus events that no phase returns directly
type recorder struct {
	current *StepReport
}

func (r *recorder) ID() string    { return "simulation-recorder" }
func (r *recorder) Priority() int { return events.PriorityObservers }

func (r *recorder) HandleEvent(event events.Event) error {
	if r.current == nil {
		return nil
	}

	castEvent, ok := event.(*events.CastEvent)
	if !ok {
		return nil
	}

	switch castEvent.GetType() {
	case events.EventTypeCastStarted:
		r.current.CastsStarted = append(r.current.CastsStarted, castEvent)
	case events.EventTypeCastAborted:
		r.current.CastsAborted = append(r.current.CastsAborted, castEvent)
	}

	return nil
}
