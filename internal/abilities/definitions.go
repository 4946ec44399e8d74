package abilities

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

const (
	AttackDamage   = 10
	AttackCooldown = 5 * time.Second

	NeedlingHexCooldown      = 30 * time.Second
	NeedlingHexTickInterval  = 500 * time.Millisecond
	NeedlingHexNumTicks      = 5
	NeedlingHexDamagePerTick = 5

	ChargedStrikeDamage   = 25
	ChargedStrikeCastTime = 1500 * time.Millisecond
	ChargedStrikeCooldown = 8 * time.Second

	PreparedBlockCastTime     = time.Second
	PreparedBlockCooldown     = 30 * time.Second
	PreparedBlockTickInterval = 500 * time.Millisecond
	PreparedBlockNumTicks     = 5
	PreparedBlockAbsorb       = 20
)

var builtins = map[entities.AbilityKind]Spawner{
	entities.AbilityKindAttack:        Attack,
	entities.AbilityKindNeedlingHex:   NeedlingHex,
	entities.AbilityKindChargedStrike: ChargedStrike,
	entities.AbilityKindPreparedBlock: PreparedBlock,
}

// Attack is an instant weapon hit
func Attack() *entities.AbilityInstance {
	return &entities.AbilityInstance{
		Kind:         entities.AbilityKindAttack,
		Name:         "Attack",
		Description:  "Strike your enemy with your weapon.",
		RequiredSlot: entities.RequiresSlot(entities.SlotTypeWeaponAttack),
		Cooldown:     AttackCooldown,
	}
}

// NeedlingHex puts a damage over time hex on the target
func NeedlingHex() *entities.AbilityInstance {
	return &entities.AbilityInstance{
		Kind:         entities.AbilityKindNeedlingHex,
		Name:         "Needling Hex",
		Description:  "Hex your enemy with repeated damage over time.",
		RequiredSlot: entities.RequiresSlot(entities.SlotTypeMagic),
		Cooldown:     NeedlingHexCooldown,
	}
}

// ChargedStrike is a slow, heavy weapon hit
func ChargedStrike() *entities.AbilityInstance {
	return &entities.AbilityInstance{
		Kind:         entities.AbilityKindChargedStrike,
		Name:         "Charged Strike",
		Description:  "Charge an extra strong strike!",
		RequiredSlot: entities.RequiresSlot(entities.SlotTypeWeaponAttack),
		Cooldown:     ChargedStrikeCooldown,
		CastTime:     ChargedStrikeCastTime,
	}
}

// PreparedBlock readies the caster to soak part of the next hit
func PreparedBlock() *entities.AbilityInstance {
	return &entities.AbilityInstance{
		Kind:         entities.AbilityKindPreparedBlock,
		Name:         "Prepared Block",
		Description:  "Prepare to block the next hit you would take (up to a certain amount of damage).",
		RequiredSlot: entities.RequiresSlot(entities.SlotTypeShieldDefend),
		Cooldown:     PreparedBlockCooldown,
		CastTime:     PreparedBlockCastTime,
	}
}
