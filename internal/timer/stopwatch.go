package timer

import "time"

// Stopwatch accumulates elapsed time while unpaused
type Stopwatch struct {
	elapsed time.Duration
	paused  bool
}

// NewStopwatch creates a running stopwatch
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// NewPausedStopwatch creates a stopwatch that does not count until unpaused
func NewPausedStopwatch() *Stopwatch {
	return &Stopwatch{paused: true}
}

// Tick adds delta to the elapsed time unless paused
func (s *Stopwatch) Tick(delta time.Duration) {
	if s.paused {
		return
	}
	s.elapsed = saturatingAdd(s.elapsed, max(delta, 0))
}

// Elapsed returns the accumulated time
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Pause stops accumulation
func (s *Stopwatch) Pause() {
	s.paused = true
}

// Unpause resumes accumulation
func (s *Stopwatch) Unpause() {
	s.paused = false
}

// SetPaused pauses or unpauses the stopwatch
func (s *Stopwatch) SetPaused(paused bool) {
	s.paused = paused
}

// IsPaused reports whether the stopwatch is paused
func (s *Stopwatch) IsPaused() bool {
	return s.paused
}

// Reset clears the elapsed time, keeping the pause state
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}
