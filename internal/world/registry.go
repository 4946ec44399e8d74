// Package world holds every fight, actor, slot and ability of a simulation together with
// the relations between them. Each relation is stored in both directions so "who holds
// this slot" and "which slots does this actor hold" are both single map lookups.
//
// A Registry is owned by one simulation engine and is not safe for concurrent use.
package world

import (
	"slices"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/uuid"
)

// Registry stores entities and their relations
type Registry struct {
	ids uuid.Generator

	fights     map[string]*entities.Fight
	fightOrder []string
	actors     map[string]*entities.Actor
	slots      map[string]*entities.Slot
	abilities  map[string]*entities.AbilityInstance

	actorFight     map[string]string   // actorID -> fightID
	fightActors    map[string][]string // fightID -> actor IDs
	slotHolder     map[string]string   // slotID -> actorID
	actorSlots     map[string][]string // actorID -> slot IDs
	abilityHolder  map[string]string   // abilityID -> actorID
	actorAbilities map[string][]string // actorID -> ability IDs
}

// RegistryConfig holds the registry's collaborators
type RegistryConfig struct {
	// IDGenerator mints ids for entities spawned without one. Defaults to random UUIDs.
	IDGenerator uuid.Generator
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *RegistryConfig) *Registry {
	ids := uuid.Generator(uuid.NewGoogleUUIDGenerator())
	if cfg != nil && cfg.IDGenerator != nil {
		ids = cfg.IDGenerator
	}

	return &Registry{
		ids:            ids,
		fights:         make(map[string]*entities.Fight),
		actors:         make(map[string]*entities.Actor),
		slots:          make(map[string]*entities.Slot),
		abilities:      make(map[string]*entities.AbilityInstance),
		actorFight:     make(map[string]string),
		fightActors:    make(map[string][]string),
		slotHolder:     make(map[string]string),
		actorSlots:     make(map[string][]string),
		abilityHolder:  make(map[string]string),
		actorAbilities: make(map[string][]string),
	}
}

// NewID mints an id from the registry's generator
func (r *Registry) NewID() string {
	return r.ids.New()
}

// SpawnFight creates a new fight with a paused clock
func (r *Registry) SpawnFight(name string) *entities.Fight {
	fight := entities.NewFight(r.ids.New(), name)
	r.fights[fight.ID] = fight
	r.fightOrder = append(r.fightOrder, fight.ID)
	return fight
}

// SpawnActor adds an actor as a direct member of a fight
func (r *Registry) SpawnActor(fightID string, actor *entities.Actor) (*entities.Actor, error) {
	if actor == nil {
		return nil, simerr.InvalidArgument("actor is required")
	}
	if _, ok := r.fights[fightID]; !ok {
		return nil, simerr.NotFoundf("fight %s not found", fightID)
	}
	if actor.ID == "" {
		actor.ID = r.ids.New()
	}
	if _, exists := r.actors[actor.ID]; exists {
		return nil, simerr.AlreadyExistsf("actor %s already exists", actor.ID)
	}
	if actor.Health == nil {
		actor.Health = entities.NewHealth(0)
	}

	r.actors[actor.ID] = actor
	r.actorFight[actor.ID] = fightID
	r.fightActors[fightID] = append(r.fightActors[fightID], actor.ID)

	return actor, nil
}

// AttachSlot gives a slot to an actor
func (r *Registry) AttachSlot(actorID string, slot *entities.Slot) (*entities.Slot, error) {
	if slot == nil {
		return nil, simerr.InvalidArgument("slot is required")
	}
	if _, ok := r.actors[actorID]; !ok {
		return nil, simerr.NotFoundf("actor %s not found", actorID)
	}
	if slot.ID == "" {
		slot.ID = r.ids.New()
	}
	if _, exists := r.slots[slot.ID]; exists {
		return nil, simerr.AlreadyExistsf("slot %s already exists", slot.ID)
	}

	r.slots[slot.ID] = slot
	r.slotHolder[slot.ID] = actorID
	r.actorSlots[actorID] = append(r.actorSlots[actorID], slot.ID)

	return slot, nil
}

// AttachAbility gives an ability instance to an actor
func (r *Registry) AttachAbility(actorID string, ability *entities.AbilityInstance) (*entities.AbilityInstance, error) {
	if ability == nil {
		return nil, simerr.InvalidArgument("ability is required")
	}
	if _, ok := r.actors[actorID]; !ok {
		return nil, simerr.NotFoundf("actor %s not found", actorID)
	}
	if ability.ID == "" {
		ability.ID = r.ids.New()
	}
	if _, exists := r.abilities[ability.ID]; exists {
		return nil, simerr.AlreadyExistsf("ability %s already exists", ability.ID)
	}

	r.abilities[ability.ID] = ability
	r.abilityHolder[ability.ID] = actorID
	r.actorAbilities[actorID] = append(r.actorAbilities[actorID], ability.ID)

	return ability, nil
}

// Fight looks up a fight by id
func (r *Registry) Fight(id string) (*entities.Fight, bool) {
	f, ok := r.fights[id]
	return f, ok
}

// Actor looks up an actor by id
func (r *Registry) Actor(id string) (*entities.Actor, bool) {
	a, ok := r.actors[id]
	return a, ok
}

// Slot looks up a slot by id
func (r *Registry) Slot(id string) (*entities.Slot, bool) {
	s, ok := r.slots[id]
	return s, ok
}

// Ability looks up an ability instance by id
func (r *Registry) Ability(id string) (*entities.AbilityInstance, bool) {
	a, ok := r.abilities[id]
	return a, ok
}

// Fights returns every fight in spawn order
func (r *Registry) Fights() []*entities.Fight {
	out := make([]*entities.Fight, 0, len(r.fightOrder))
	for _, id := range r.fightOrder {
		out = append(out, r.fights[id])
	}
	return out
}

// FightOf resolves the fight an actor is a direct member of
func (r *Registry) FightOf(actorID string) (*entities.Fight, bool) {
	fightID, ok := r.actorFight[actorID]
	if !ok {
		return nil, false
	}
	return r.Fight(fightID)
}

// SlotHolder resolves the actor holding a slot
func (r *Registry) SlotHolder(slotID string) (*entities.Actor, bool) {
	actorID, ok := r.slotHolder[slotID]
	if !ok {
		return nil, false
	}
	return r.Actor(actorID)
}

// AbilityHolder resolves the actor holding an ability instance
func (r *Registry) AbilityHolder(abilityID string) (*entities.Actor, bool) {
	actorID, ok := r.abilityHolder[abilityID]
	if !ok {
		return nil, false
	}
	return r.Actor(actorID)
}

// Members returns the direct actor members of a fight in spawn order
func (r *Registry) Members(fightID string) []*entities.Actor {
	ids := r.fightActors[fightID]
	out := make([]*entities.Actor, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.actors[id])
	}
	return out
}

// SlotsOf returns the slots held by an actor
func (r *Registry) SlotsOf(actorID string) []*entities.Slot {
	ids := r.actorSlots[actorID]
	out := make([]*entities.Slot, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.slots[id])
	}
	return out
}

// AbilitiesOf returns the ability instances held by an actor
func (r *Registry) AbilitiesOf(actorID string) []*entities.AbilityInstance {
	ids := r.actorAbilities[actorID]
	out := make([]*entities.AbilityInstance, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.abilities[id])
	}
	return out
}

// Despawned lists everything a DespawnFight call removed, so the services holding
// per-entity state (casts, cooldowns, effects) can drop theirs
type Despawned struct {
	FightID    string
	ActorIDs   []string
	SlotIDs    []string
	AbilityIDs []string
}

// DespawnFight removes a fight, its members and everything they hold
func (r *Registry) DespawnFight(fightID string) (*Despawned, error) {
	if _, ok := r.fights[fightID]; !ok {
		return nil, simerr.NotFoundf("fight %s not found", fightID)
	}

	out := &Despawned{FightID: fightID}
	for _, actorID := range r.fightActors[fightID] {
		for _, slotID := range r.actorSlots[actorID] {
			delete(r.slots, slotID)
			delete(r.slotHolder, slotID)
			out.SlotIDs = append(out.SlotIDs, slotID)
		}
		for _, abilityID := range r.actorAbilities[actorID] {
			delete(r.abilities, abilityID)
			delete(r.abilityHolder, abilityID)
			out.AbilityIDs = append(out.AbilityIDs, abilityID)
		}
		delete(r.actorSlots, actorID)
		delete(r.actorAbilities, actorID)
		delete(r.actorFight, actorID)
		delete(r.actors, actorID)
		out.ActorIDs = append(out.ActorIDs, actorID)
	}

	delete(r.fightActors, fightID)
	delete(r.fights, fightID)
	r.fightOrder = slices.DeleteFunc(r.fightOrder, func(id string) bool { return id == fightID })

	return out, nil
}
