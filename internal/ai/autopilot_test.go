package ai_test

import (
	"testing"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/services"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutopilot_FollowsRotation(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	basic, err := p.World.SpawnBasicFight("arena", p.Catalog)
	require.NoError(t, err)

	fightID, playerID, enemyID := basic.Fight.ID, basic.Player.ID, basic.Enemy.ID

	cmd, ok := p.Autopilot.Next(fightID, playerID, enemyID)
	require.True(t, ok)
	assert.Equal(t, entities.OriginUserInteraction, cmd.Origin)
	assert.Equal(t, basic.PlayerAbilities[entities.AbilityKindPreparedBlock].ID, cmd.Request.AbilityID)
	assert.Equal(t, basic.PlayerSlots[entities.SlotTypeShieldDefend].ID, cmd.Request.SlotID)

	// the block is now casting on the shield slot, so the hex comes next
	_, err = p.AbilityService.Process(cmd)
	require.NoError(t, err)

	cmd, ok = p.Autopilot.Next(fightID, playerID, enemyID)
	require.True(t, ok)
	assert.Equal(t, basic.PlayerAbilities[entities.AbilityKindNeedlingHex].ID, cmd.Request.AbilityID)
	assert.Equal(t, basic.PlayerSlots[entities.SlotTypeMagic].ID, cmd.Request.SlotID)
}

func TestAutopilot_NothingForDeadActor(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	basic, err := p.World.SpawnBasicFight("arena", p.Catalog)
	require.NoError(t, err)

	basic.Player.Health.ApplyDamage(1000)

	_, ok := p.Autopilot.Next(basic.Fight.ID, basic.Player.ID, basic.Enemy.ID)
	assert.False(t, ok)
}

func TestAutopilot_NothingOnceFightEnded(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{IDGenerator: uuid.NewSequentialGenerator("id")})
	basic, err := p.World.SpawnBasicFight("arena", p.Catalog)
	require.NoError(t, err)

	basic.Fight.Result = entities.FactionVictory(entities.FactionEnemy, 0)

	cmd, ok := p.Autopilot.Next(basic.Fight.ID, basic.Player.ID, basic.Enemy.ID)
	assert.False(t, ok)
	assert.Nil(t, cmd)
}
