// Package timer provides the step-driven timers used by fights, casts, cooldowns and
// effects. Nothing in here reads the wall clock: every timer only moves when Tick is
// called with the elapsed step duration.
package timer

import (
	"math"
	"time"
)

// Mode controls what a Timer does once it reaches its duration
type Mode int

const (
	// Once timers stop at their duration and stay finished
	Once Mode = iota
	// Repeating timers wrap around and count how many times they finished
	Repeating
)

// Timer counts elapsed time up to a fixed duration
type Timer struct {
	duration              time.Duration
	elapsed               time.Duration
	mode                  Mode
	finished              bool
	timesFinishedThisTick uint32
}

// New creates a timer with the given duration and mode
func New(duration time.Duration, mode Mode) *Timer {
	if duration < 0 {
		duration = 0
	}
	return &Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick advances the timer by delta. Negative deltas are treated as zero.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.mode == Once && t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	t.elapsed = saturatingAdd(t.elapsed, max(delta, 0))
	t.finished = t.elapsed >= t.duration

	if !t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	if t.mode == Once {
		t.timesFinishedThisTick = 1
		t.elapsed = t.duration
		return t
	}

	if t.duration == 0 {
		t.timesFinishedThisTick = math.MaxUint32
		t.elapsed = 0
		return t
	}

	times := t.elapsed / t.duration
	if times > math.MaxUint32 {
		t.timesFinishedThisTick = math.MaxUint32
	} else {
		t.timesFinishedThisTick = uint32(times)
	}
	t.elapsed %= t.duration

	return t
}

// Finished reports whether the timer reached its duration. For repeating timers this
// is only true during the tick in which it wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick made the timer finish
func (t *Timer) JustFinished() bool {
	return t.timesFinishedThisTick > 0
}

// TimesFinishedThisTick returns how often the timer finished during the last Tick
func (t *Timer) TimesFinishedThisTick() uint32 {
	return t.timesFinishedThisTick
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time accumulated in the current interval
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the timer finishes the current interval
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Reset puts the timer back to zero elapsed time
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinishedThisTick = 0
}

func saturatingAdd(a, b time.Duration) time.Duration {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func saturatingMul(d time.Duration, n uint32) time.Duration {
	if n == 0 || d == 0 {
		return 0
	}
	if d > math.MaxInt64/time.Duration(n) {
		return math.MaxInt64
	}
	return d * time.Duration(n)
}
