package effects

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/timer"
)

// Builder helps create effect instances
type Builder struct {
	instance     *Instance
	tickInterval time.Duration
	numTicks     uint32
}

// NewBuilder creates a new effect builder
func NewBuilder(kind Kind) *Builder {
	return &Builder{
		instance: &Instance{Kind: kind},
	}
}

// WithSource sets the actor that applied the effect
func (b *Builder) WithSource(sourceID string) *Builder {
	b.instance.SourceID = sourceID
	return b
}

// WithTicks sets how often and how many times the effect ticks
func (b *Builder) WithTicks(interval time.Duration, count uint32) *Builder {
	b.tickInterval = interval
	b.numTicks = count
	return b
}

// WithMagnitude sets the Kind specific magnitude
func (b *Builder) WithMagnitude(magnitude float64) *Builder {
	b.instance.Magnitude = magnitude
	return b
}

// Build returns a fresh instance. Every call starts a new timer.
func (b *Builder) Build() *Instance {
	inst := *b.instance
	inst.Timer = timer.NewFiniteRepeating(b.tickInterval, b.numTicks)
	return &inst
}
