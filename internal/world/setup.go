package world

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
)

// AbilitySpawner constructs a fresh ability instance for a kind. The ability catalog
// implements it.
type AbilitySpawner interface {
	Spawn(kind entities.AbilityKind) (*entities.AbilityInstance, error)
}

const basicActorHealth = 100

// BasicFight is the one-player-versus-one-enemy setup used by the CLI and the tests
type BasicFight struct {
	Fight *entities.Fight

	Player          *entities.Actor
	PlayerSlots     map[entities.SlotType]*entities.Slot
	PlayerAbilities map[entities.AbilityKind]*entities.AbilityInstance

	Enemy       *entities.Actor
	EnemySlot   *entities.Slot
	EnemyAttack *entities.AbilityInstance
}

// SpawnBasicFight creates a paused fight between a player holding every ability and an
// AI controlled enemy holding only Attack
func (r *Registry) SpawnBasicFight(name string, catalog AbilitySpawner) (*BasicFight, error) {
	if catalog == nil {
		return nil, simerr.InvalidArgument("ability catalog is required")
	}

	out := &BasicFight{
		Fight:           r.SpawnFight(name),
		PlayerSlots:     make(map[entities.SlotType]*entities.Slot),
		PlayerAbilities: make(map[entities.AbilityKind]*entities.AbilityInstance),
	}

	player, err := r.SpawnActor(out.Fight.ID, &entities.Actor{
		Name:    "Player",
		Faction: entities.FactionPlayer,
		Health:  entities.NewHealth(basicActorHealth),
	})
	if err != nil {
		return nil, simerr.Wrap(err, "failed to spawn player")
	}
	out.Player = player

	playerSlots := []*entities.Slot{
		{Type: entities.SlotTypeWeaponAttack, OnUseCooldown: time.Second},
		{Type: entities.SlotTypeShieldDefend},
		{Type: entities.SlotTypeMagic, OnUseCooldown: 2 * time.Second},
	}
	for _, slot := range playerSlots {
		if _, err := r.AttachSlot(player.ID, slot); err != nil {
			return nil, simerr.Wrapf(err, "failed to attach %s slot", slot.Type)
		}
		out.PlayerSlots[slot.Type] = slot
	}

	for _, kind := range []entities.AbilityKind{
		entities.AbilityKindAttack,
		entities.AbilityKindNeedlingHex,
		entities.AbilityKindChargedStrike,
		entities.AbilityKindPreparedBlock,
	} {
		ability, err := r.grant(player.ID, kind, catalog)
		if err != nil {
			return nil, err
		}
		out.PlayerAbilities[kind] = ability
	}

	enemy, err := r.SpawnActor(out.Fight.ID, &entities.Actor{
		Name:         "Enemy",
		Faction:      entities.FactionEnemy,
		Health:       entities.NewHealth(basicActorHealth),
		AIControlled: true,
	})
	if err != nil {
		return nil, simerr.Wrap(err, "failed to spawn enemy")
	}
	out.Enemy = enemy

	out.EnemySlot, err = r.AttachSlot(enemy.ID, &entities.Slot{
		Type:          entities.SlotTypeWeaponAttack,
		OnUseCooldown: time.Second,
	})
	if err != nil {
		return nil, simerr.Wrap(err, "failed to attach enemy slot")
	}

	out.EnemyAttack, err = r.grant(enemy.ID, entities.AbilityKindAttack, catalog)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Registry) grant(actorID string, kind entities.AbilityKind, catalog AbilitySpawner) (*entities.AbilityInstance, error) {
	ability, err := catalog.Spawn(kind)
	if err != nil {
		return nil, simerr.Wrapf(err, "failed to spawn ability %s", kind)
	}
	return r.AttachAbility(actorID, ability)
}
