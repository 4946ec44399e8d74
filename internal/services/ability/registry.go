package ability

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// HandlerRegistry manages ability handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[entities.AbilityKind]Handler
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[entities.AbilityKind]Handler),
	}
}

// Register adds a handler to the registry
func (r *HandlerRegistry) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[handler.Key()] = handler
}

// Get retrieves a handler by kind
func (r *HandlerRegistry) Get(kind entities.AbilityKind) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[kind]
	return handler, exists
}

// List returns all registered kinds, sorted
func (r *HandlerRegistry) List() []entities.AbilityKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]entities.AbilityKind, 0, len(r.handlers))
	for key := range r.handlers {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
