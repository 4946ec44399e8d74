// Package abilities is the ability catalog: the definitions of every ability kind and
// the handlers that perform them.
package abilities

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
)

// Spawner builds a fresh instance of one ability kind
type Spawner func() *entities.AbilityInstance

// Catalog maps ability kinds to their spawners
type Catalog struct {
	mu       sync.RWMutex
	spawners map[entities.AbilityKind]Spawner
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		spawners: make(map[entities.AbilityKind]Spawner),
	}
}

// DefaultCatalog creates a catalog holding every built-in ability
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for kind, spawner := range builtins {
		// builtins has unique keys, Register cannot fail here
		_ = c.Register(kind, spawner)
	}
	return c
}

// Register adds a spawner for a kind
func (c *Catalog) Register(kind entities.AbilityKind, spawner Spawner) error {
	if spawner == nil {
		return simerr.InvalidArgumentf("spawner for %s is nil", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.spawners[kind]; exists {
		return simerr.AlreadyExistsf("ability %s already registered", kind)
	}
	c.spawners[kind] = spawner

	return nil
}

// Spawn constructs a new instance of a kind. The instance has no ID until it is
// attached to an actor.
func (c *Catalog) Spawn(kind entities.AbilityKind) (*entities.AbilityInstance, error) {
	c.mu.RLock()
	spawner, ok := c.spawners[kind]
	c.mu.RUnlock()

	if !ok {
		return nil, simerr.NotFoundf("ability %s not in catalog", kind)
	}
	return spawner(), nil
}

// Kinds returns every registered kind, sorted
func (c *Catalog) Kinds() []entities.AbilityKind {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kinds := make([]entities.AbilityKind, 0, len(c.spawners))
	for kind := range c.spawners {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}
