package entities

import "time"

// FightRecord is the persisted summary of a concluded fight
type FightRecord struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Winner  Faction        `json:"winner,omitempty"`
	Elapsed time.Duration  `json:"elapsed"`
	Members []MemberRecord `json:"members"`
	EndedAt time.Time      `json:"ended_at"`
}

// MemberRecord is the end state of one fight member
type MemberRecord struct {
	ActorID   string  `json:"actor_id"`
	Name      string  `json:"name"`
	Faction   Faction `json:"faction"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Alive     bool    `json:"alive"`
}
