package timer

import "time"

// FiniteRepeating is a repeating timer that only fires a fixed number of times.
// It backs damage-over-time style effects: every finished interval is a "fresh tick".
type FiniteRepeating struct {
	timer          *Timer
	remainingTicks uint32
}

// NewFiniteRepeating creates a timer firing numTicks times, once per tickInterval
func NewFiniteRepeating(tickInterval time.Duration, numTicks uint32) *FiniteRepeating {
	return &FiniteRepeating{
		timer:          New(tickInterval, Repeating),
		remainingTicks: numTicks,
	}
}

// RemainingTicks returns how many ticks are left
func (f *FiniteRepeating) RemainingTicks() uint32 {
	return f.remainingTicks
}

// IsFinished reports whether all ticks have elapsed
func (f *FiniteRepeating) IsFinished() bool {
	return f.remainingTicks == 0
}

// TickInterval returns the time between two ticks
func (f *FiniteRepeating) TickInterval() time.Duration {
	return f.timer.Duration()
}

// RemainingTime is (remaining ticks - 1) full intervals plus what is left of the
// current one. Zero once finished.
func (f *FiniteRepeating) RemainingTime() time.Duration {
	if f.IsFinished() {
		return 0
	}
	return saturatingAdd(saturatingMul(f.timer.Duration(), f.remainingTicks-1), f.timer.Remaining())
}

// TickFreshTicks advances the timer by elapsed and returns the number of ticks that
// happened, capped at the remaining ticks. A large elapsed value catches up on every
// interval it spans.
func (f *FiniteRepeating) TickFreshTicks(elapsed time.Duration) uint32 {
	if f.IsFinished() {
		return 0
	}

	f.timer.Tick(elapsed)

	fresh := min(f.timer.TimesFinishedThisTick(), f.remainingTicks)
	f.remainingTicks -= fresh

	return fresh
}
