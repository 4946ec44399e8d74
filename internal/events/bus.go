package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
)

// Keys used on the toolkit event context
const (
	contextEvent    = "skirmish.event"
	contextDelivery = "skirmish.delivery"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus publishes simulation events through rpg-toolkit's event bus. Emit returns only
// after every listener has seen the event, and a failing listener does not stop
// delivery to the ones after it.
type Bus struct {
	bus    *rpgevents.Bus
	mu     sync.RWMutex
	logger *slog.Logger

	// eventType -> listener ID -> toolkit subscription ID
	subscriptions map[EventType]map[string]string
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return NewBusWithLogger(nil)
}

// NewBusWithLogger creates a bus that logs subscriptions and listener failures to logger
func NewBusWithLogger(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		bus:           rpgevents.NewBus(),
		logger:        logger.With("component", "event_bus"),
		subscriptions: make(map[EventType]map[string]string),
	}
}

// GetRPGBus returns the underlying rpg-toolkit event bus
func (b *Bus) GetRPGBus() *rpgevents.Bus {
	return b.bus
}

// Subscribe adds a listener for a specific event type. Subscribing a listener ID
// that is already registered for the type replaces the earlier registration.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unsubscribeLocked(eventType, listener.ID())

	handler := func(_ context.Context, e rpgevents.Event) error {
		event, ok := unwrapEvent(e)
		if !ok || event.IsCancelled() {
			return nil
		}

		err := listener.HandleEvent(event)
		if err != nil {
			err = fmt.Errorf("listener %s failed: %w", listener.ID(), err)
			if d, ok := deliveryOf(e); ok {
				d.errs = append(d.errs, err)
				err = nil
			}
		}

		// Propagate a cancel so the toolkit stops delivery
		if event.IsCancelled() && !e.IsCancelled() {
			e.Cancel()
		}
		return err
	}

	id := b.bus.SubscribeFunc(toolkitName(eventType), toolkitPriority(listener.Priority()), handler)

	if b.subscriptions[eventType] == nil {
		b.subscriptions[eventType] = make(map[string]string)
	}
	b.subscriptions[eventType][listener.ID()] = id

	b.logger.Debug("subscribed listener",
		"listener", listener.ID(), "event", eventType, "priority", listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unsubscribeLocked(eventType, listenerID) {
		b.logger.Debug("unsubscribed listener", "listener", listenerID, "event", eventType)
	}
}

func (b *Bus) unsubscribeLocked(eventType EventType, listenerID string) bool {
	listeners, ok := b.subscriptions[eventType]
	if !ok {
		return false
	}
	id, ok := listeners[listenerID]
	if !ok {
		return false
	}

	if err := b.bus.Unsubscribe(id); err != nil {
		b.logger.Warn("failed to unsubscribe", "subscription", id, "error", err)
	}
	delete(listeners, listenerID)
	if len(listeners) == 0 {
		delete(b.subscriptions, eventType)
	}
	return true
}

// Emit sends an event to all registered listeners. Listener failures are joined
// into the returned error.
func (b *Bus) Emit(event Event) error {
	tkEvent := rpgevents.NewGameEvent(toolkitName(event.GetType()), fightEntityOf(event), nil)

	d := &delivery{}
	tkEvent.Context().Set(contextEvent, event)
	tkEvent.Context().Set(contextDelivery, d)

	if event.IsCancelled() {
		tkEvent.Cancel()
	}

	err := b.bus.Publish(context.Background(), tkEvent)
	if err != nil {
		d.errs = append(d.errs, err)
	}

	if len(d.errs) > 0 {
		b.logger.Warn("listeners failed", "event", event.GetType(), "fight_id", event.GetFightID(), "failures", len(d.errs))
		return errors.Join(d.errs...)
	}
	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, listeners := range b.subscriptions {
		for _, id := range listeners {
			if err := b.bus.Unsubscribe(id); err != nil {
				b.logger.Warn("failed to unsubscribe", "subscription", id, "error", err)
			}
		}
	}

	b.subscriptions = make(map[EventType]map[string]string)
}

// ListenerCount returns the number of listeners for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscriptions[eventType])
}

// delivery collects listener failures for one Emit
type delivery struct {
	errs []error
}

func deliveryOf(e rpgevents.Event) (*delivery, bool) {
	v, ok := e.Context().Get(contextDelivery)
	if !ok {
		return nil, false
	}
	d, ok := v.(*delivery)
	return d, ok
}

func unwrapEvent(e rpgevents.Event) (Event, bool) {
	v, ok := e.Context().Get(contextEvent)
	if !ok {
		return nil, false
	}
	event, ok := v.(Event)
	return event, ok
}

// toolkitName maps a simulation event type to its toolkit event name
func toolkitName(eventType EventType) string {
	return fmt.Sprintf("skirmish.%s", eventType)
}

// toolkitPriority converts our ordering (lower first) to the toolkit's (higher first)
func toolkitPriority(priority int) int {
	return -priority
}

// FightEntity identifies the fight an event belongs to as a toolkit entity
type FightEntity struct {
	FightID string
}

var _ core.Entity = (*FightEntity)(nil)

// GetID returns the fight ID
func (f *FightEntity) GetID() string { return f.FightID }

// GetType returns the entity type
func (f *FightEntity) GetType() string { return "fight" }

func fightEntityOf(event Event) core.Entity {
	if event.GetFightID() == "" {
		return nil
	}
	return &FightEntity{FightID: event.GetFightID()}
}
