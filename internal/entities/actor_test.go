package entities_test

import (
	"testing"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestHealth_ApplyDamage(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		amount    float64
		wantHP    float64
		wantDeath bool
	}{
		{name: "partial damage", current: 100, amount: 10, wantHP: 90},
		{name: "exact kill", current: 10, amount: 10, wantHP: 0, wantDeath: true},
		{name: "overkill clamps to zero", current: 5, amount: 25, wantHP: 0, wantDeath: true},
		{name: "already dead", current: 0, amount: 10, wantHP: 0},
		{name: "negative amount ignored", current: 50, amount: -5, wantHP: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &entities.Health{Current: tt.current, Max: 100}

			died := h.ApplyDamage(tt.amount)

			assert.Equal(t, tt.wantDeath, died)
			assert.Equal(t, tt.wantHP, h.Current)
		})
	}
}

func TestFight_Status(t *testing.T) {
	fight := entities.NewFight("fight-1", "Test")
	assert.Equal(t, entities.FightStatusPaused, fight.Status())

	fight.Clock.Unpause()
	assert.Equal(t, entities.FightStatusActive, fight.Status())

	fight.Result = entities.FactionVictory(entities.FactionPlayer, 0)
	assert.Equal(t, entities.FightStatusEnded, fight.Status())
}
