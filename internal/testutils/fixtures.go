package testutils

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/timer"
)

// CreateTestActor creates a living actor with full health
func CreateTestActor(id string, faction entities.Faction, health float64) *entities.Actor {
	return &entities.Actor{
		ID:      id,
		Name:    id,
		Faction: faction,
		Health:  entities.NewHealth(health),
	}
}

// CreateTestFight creates a fight whose clock is already running
func CreateTestFight(id string) *entities.Fight {
	fight := entities.NewFight(id, id)
	fight.Clock.Unpause()
	return fight
}

// CreateEndedFight creates a concluded fight won by winner after elapsed fight time
func CreateEndedFight(id string, winner entities.Faction, elapsed time.Duration) *entities.Fight {
	fight := &entities.Fight{ID: id, Name: id, Clock: timer.NewStopwatch()}
	fight.Clock.Tick(elapsed)
	fight.Clock.Pause()
	fight.Result = entities.FactionVictory(winner, elapsed)
	return fight
}

// CreateTestFightRecord creates a player victory record
func CreateTestFightRecord(id string, endedAt time.Time) *entities.FightRecord {
	return &entities.FightRecord{
		ID:      id,
		Name:    "fight " + id,
		Winner:  entities.FactionPlayer,
		Elapsed: 30 * time.Second,
		Members: []entities.MemberRecord{
			{ActorID: id + "-player", Name: "Player", Faction: entities.FactionPlayer, Health: 70, MaxHealth: 100, Alive: true},
			{ActorID: id + "-enemy", Name: "Enemy", Faction: entities.FactionEnemy, Health: 0, MaxHealth: 100},
		},
		EndedAt: endedAt,
	}
}
