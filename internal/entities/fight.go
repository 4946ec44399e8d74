package entities

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/timer"
)

// FightStatus is derived from the clock and the result
type FightStatus string

const (
	FightStatusPaused FightStatus = "paused" // Clock not running, no result yet
	FightStatusActive FightStatus = "active" // Clock running
	FightStatusEnded  FightStatus = "ended"  // Result recorded
)

// Fight is an encounter with a shared pausable clock
type Fight struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Clock  *timer.Stopwatch `json:"-"`
	Result *FightResult     `json:"result,omitempty"`
}

// NewFight creates a fight with a paused clock
func NewFight(id, name string) *Fight {
	return &Fight{
		ID:    id,
		Name:  name,
		Clock: timer.NewPausedStopwatch(),
	}
}

// IsEnded reports whether a result has been recorded
func (f *Fight) IsEnded() bool {
	return f.Result != nil
}

// IsPaused reports whether the clock is stopped
func (f *Fight) IsPaused() bool {
	return f.Clock.IsPaused()
}

// Status returns the current status of the fight
func (f *Fight) Status() FightStatus {
	switch {
	case f.IsEnded():
		return FightStatusEnded
	case f.IsPaused():
		return FightStatusPaused
	default:
		return FightStatusActive
	}
}

// FightResult is the decided outcome of a fight
type FightResult struct {
	// Winner is the last faction with living members
	Winner Faction `json:"winner"`

	// Elapsed is the fight clock reading when the result was recorded
	Elapsed time.Duration `json:"elapsed"`
}

// FactionVictory builds the result for a fight won by a single faction
func FactionVictory(winner Faction, elapsed time.Duration) *FightResult {
	return &FightResult{Winner: winner, Elapsed: elapsed}
}
