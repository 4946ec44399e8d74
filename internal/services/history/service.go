// Package history turns concluded fights into persisted records. It runs outside the
// simulation step and is the only part of the combat flow that reads the wall clock.
package history

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/repositories/fights"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Service defines fight history operations
type Service interface {
	// Build creates the record of an ended fight from its current world state
	Build(fightID string) (*entities.FightRecord, error)

	// Save builds and stores the record of an ended fight
	Save(ctx context.Context, fightID string) (*entities.FightRecord, error)

	// Get retrieves a stored record
	Get(ctx context.Context, fightID string) (*entities.FightRecord, error)

	// Recent lists the most recently ended fights
	Recent(ctx context.Context, limit int) ([]*entities.FightRecord, error)
}

type service struct {
	world        *world.Registry
	repository   fights.Repository
	timeProvider TimeProvider
	logger       *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	World        *world.Registry
	Repository   fights.Repository
	TimeProvider TimeProvider
	Logger       *slog.Logger
}

// NewService creates a new history service
func NewService(cfg *ServiceConfig) Service {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		world:        cfg.World,
		repository:   cfg.Repository,
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
	}
	if svc.timeProvider == nil {
		svc.timeProvider = RealTimeProvider{}
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	svc.logger = svc.logger.With("service", "history")

	return svc
}

func (s *service) Build(fightID string) (*entities.FightRecord, error) {
	if fightID == "" {
		return nil, simerr.InvalidArgument("fight ID is required")
	}

	fight, ok := s.world.Fight(fightID)
	if !ok {
		return nil, simerr.NotFoundf("fight %s not found", fightID)
	}
	if !fight.IsEnded() {
		return nil, simerr.FailedPreconditionf("fight %s has not ended", fightID).
			WithMeta("fight_id", fightID)
	}

	members := s.world.Members(fightID)
	record := &entities.FightRecord{
		ID:      fight.ID,
		Name:    fight.Name,
		Winner:  fight.Result.Winner,
		Elapsed: fight.Result.Elapsed,
		Members: make([]entities.MemberRecord, 0, len(members)),
		EndedAt: s.timeProvider.Now(),
	}

	for _, actor := range members {
		member := entities.MemberRecord{
			ActorID: actor.ID,
			Name:    actor.Name,
			Faction: actor.Faction,
			Alive:   actor.IsAlive(),
		}
		if actor.Health != nil {
			member.Health = actor.Health.Current
			member.MaxHealth = actor.Health.Max
		}
		record.Members = append(record.Members, member)
	}

	return record, nil
}

func (s *service) Save(ctx context.Context, fightID string) (*entities.FightRecord, error) {
	record, err := s.Build(fightID)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, record); err != nil {
		return nil, simerr.Wrapf(err, "failed to save fight %s", fightID)
	}

	s.logger.Info("fight saved",
		"fight_id", record.ID, "winner", record.Winner, "elapsed", record.Elapsed)

	return record, nil
}

func (s *service) Get(ctx context.Context, fightID string) (*entities.FightRecord, error) {
	if fightID == "" {
		return nil, simerr.InvalidArgument("fight ID is required")
	}
	return s.repository.Get(ctx, fightID)
}

func (s *service) Recent(ctx context.Context, limit int) ([]*entities.FightRecord, error) {
	return s.repository.ListRecent(ctx, limit)
}
