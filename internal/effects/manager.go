package effects

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/uuid"
)

// Holder is the per-target record owning that target's effect instances
type Holder struct {
	ID       string
	TargetID string
	effects  map[Kind]*Instance
}

// Get returns the holder's instance of a kind
func (h *Holder) Get(kind Kind) (*Instance, bool) {
	inst, ok := h.effects[kind]
	return inst, ok
}

// Len returns how many instances the holder owns
func (h *Holder) Len() int {
	return len(h.effects)
}

// Manager owns every effect holder of a simulation
type Manager struct {
	holders        map[string]*Holder // targetID -> holder
	instanceHolder map[string]*Holder // instanceID -> holder
	behaviors      map[Kind]Behavior

	pause  PauseResolver
	bus    *events.Bus
	ids    uuid.Generator
	logger *slog.Logger
}

// ManagerConfig holds configuration for the manager
type ManagerConfig struct {
	PauseResolver PauseResolver
	Bus           *events.Bus
	UUIDGenerator uuid.Generator
	Logger        *slog.Logger
}

// NewManager creates a new effect manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg.PauseResolver == nil {
		panic("pause resolver is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	m := &Manager{
		holders:        make(map[string]*Holder),
		instanceHolder: make(map[string]*Holder),
		behaviors:      make(map[Kind]Behavior),
		pause:          cfg.PauseResolver,
		bus:            cfg.Bus,
		ids:            cfg.UUIDGenerator,
		logger:         cfg.Logger,
	}
	if m.ids == nil {
		m.ids = uuid.NewGoogleUUIDGenerator()
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.logger = m.logger.With("component", "effects")

	return m
}

// RegisterBehavior sets what instances of a kind do when they tick
func (m *Manager) RegisterBehavior(kind Kind, behavior Behavior) {
	m.behaviors[kind] = behavior
}

// SpawnOrReplace puts instance on the target, discarding any live instance of the same
// kind. The holder is created on first use.
func (m *Manager) SpawnOrReplace(targetID string, instance *Instance) (*Instance, error) {
	if targetID == "" {
		return nil, simerr.InvalidArgument("target ID is required")
	}
	if instance == nil || instance.Kind == "" || instance.Timer == nil {
		return nil, simerr.InvalidArgument("effect instance needs a kind and a timer")
	}
	if instance.ID == "" {
		instance.ID = m.ids.New()
	}

	holder, ok := m.holders[targetID]
	if !ok {
		holder = &Holder{
			ID:       m.ids.New(),
			TargetID: targetID,
			effects:  make(map[Kind]*Instance),
		}
		m.holders[targetID] = holder
	}

	old, replaced := holder.effects[instance.Kind]
	if replaced {
		delete(m.instanceHolder, old.ID)
	}
	holder.effects[instance.Kind] = instance
	m.instanceHolder[instance.ID] = holder

	m.emit(events.EventTypeEffectApplied, holder, instance, replaced)

	return instance, nil
}

// Remove drops the target's instance of kind and reports whether there was one
func (m *Manager) Remove(targetID string, kind Kind) bool {
	holder, ok := m.holders[targetID]
	if !ok {
		return false
	}
	inst, ok := holder.effects[kind]
	if !ok {
		return false
	}

	delete(holder.effects, kind)
	delete(m.instanceHolder, inst.ID)
	return true
}

// Get returns the target's instance of kind
func (m *Manager) Get(targetID string, kind Kind) (*Instance, bool) {
	holder, ok := m.holders[targetID]
	if !ok {
		return nil, false
	}
	return holder.Get(kind)
}

// HolderOf returns the holder record of a target
func (m *Manager) HolderOf(targetID string) (*Holder, bool) {
	holder, ok := m.holders[targetID]
	return holder, ok
}

// TargetOf resolves an instance back to its holder and from there to the target
func (m *Manager) TargetOf(instanceID string) (string, bool) {
	holder, ok := m.instanceHolder[instanceID]
	if !ok {
		return "", false
	}
	return holder.TargetID, true
}

// Tick advances every instance whose target's fight is running, dispatches fresh ticks
// to the kind's behavior and removes instances that ran out of ticks. It returns the
// removed instances.
func (m *Manager) Tick(delta time.Duration) []*Instance {
	var expired []*Instance

	for _, targetID := range slices.Sorted(maps.Keys(m.holders)) {
		holder := m.holders[targetID]
		if m.pause.IsActorPaused(targetID) {
			continue
		}

		for _, kind := range slices.Sorted(maps.Keys(holder.effects)) {
			inst := holder.effects[kind]

			if fresh := inst.Timer.TickFreshTicks(delta); fresh > 0 {
				m.dispatch(inst, targetID, fresh)
			}

			// the behavior may have replaced or removed the instance
			if current, ok := holder.effects[kind]; !ok || current != inst {
				continue
			}

			if inst.Timer.IsFinished() {
				delete(holder.effects, kind)
				delete(m.instanceHolder, inst.ID)
				m.emit(events.EventTypeEffectExpired, holder, inst, false)
				expired = append(expired, inst)
			}
		}
	}

	return expired
}

func (m *Manager) dispatch(inst *Instance, targetID string, fresh uint32) {
	behavior, ok := m.behaviors[inst.Kind]
	if !ok {
		m.logger.Debug("no behavior registered for effect kind", "kind", inst.Kind)
		return
	}
	behavior.OnFreshTicks(inst, targetID, fresh)
}

// RemoveTarget drops the target's holder together with all of its instances
func (m *Manager) RemoveTarget(targetID string) int {
	holder, ok := m.holders[targetID]
	if !ok {
		return 0
	}

	for _, inst := range holder.effects {
		delete(m.instanceHolder, inst.ID)
	}
	delete(m.holders, targetID)

	return len(holder.effects)
}

// Cleanup removes holders that no longer own any instance and returns how many
func (m *Manager) Cleanup() int {
	removed := 0
	for targetID, holder := range m.holders {
		if holder.Len() > 0 {
			continue
		}
		delete(m.holders, targetID)
		removed++
	}
	return removed
}

func (m *Manager) emit(eventType events.EventType, holder *Holder, inst *Instance, replaced bool) {
	err := m.bus.Emit(&events.EffectEvent{
		BaseEvent:  events.BaseEvent{Type: eventType},
		InstanceID: inst.ID,
		Kind:       string(inst.Kind),
		TargetID:   holder.TargetID,
		SourceID:   inst.SourceID,
		Replaced:   replaced,
	})
	if err != nil {
		m.logger.Error("effect listener failed", "event", eventType, "kind", inst.Kind, "error", err)
	}
}
