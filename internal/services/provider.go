package services

import (
	"log/slog"

	"github.com/KirkDiggler/skirmish/internal/abilities"
	"github.com/KirkDiggler/skirmish/internal/ai"
	"github.com/KirkDiggler/skirmish/internal/effects"
	"github.com/KirkDiggler/skirmish/internal/events"
	abilityService "github.com/KirkDiggler/skirmish/internal/services/ability"
	castService "github.com/KirkDiggler/skirmish/internal/services/cast"
	cooldownService "github.com/KirkDiggler/skirmish/internal/services/cooldown"
	damageService "github.com/KirkDiggler/skirmish/internal/services/damage"
	fightService "github.com/KirkDiggler/skirmish/internal/services/fight"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"github.com/KirkDiggler/skirmish/internal/world"
)

// Provider holds all service instances of one simulation
type Provider struct {
	World   *world.Registry
	Bus     *events.Bus
	Catalog *abilities.Catalog
	Effects *effects.Manager

	FightService    fightService.Service
	CooldownService cooldownService.Service
	CastService     castService.Service
	DamageService   damageService.Service
	AbilityService  abilityService.Service

	AI        *ai.Controller
	Autopilot *ai.Autopilot
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	// IDGenerator mints every id in the simulation. Defaults to random UUIDs.
	IDGenerator uuid.Generator

	// Catalog defaults to the built-in abilities
	Catalog *abilities.Catalog

	Logger *slog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = abilities.DefaultCatalog()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := world.NewRegistry(&world.RegistryConfig{IDGenerator: ids})
	bus := events.NewBusWithLogger(logger)

	fights := fightService.NewService(&fightService.ServiceConfig{
		World:  reg,
		Bus:    bus,
		Logger: logger,
	})

	cooldowns := cooldownService.NewService(&cooldownService.ServiceConfig{
		World:        reg,
		FightService: fights,
		Logger:       logger,
	})

	casts := castService.NewService(&castService.ServiceConfig{
		World:         reg,
		FightService:  fights,
		Bus:           bus,
		UUIDGenerator: ids,
		Logger:        logger,
	})

	fx := effects.NewManager(&effects.ManagerConfig{
		PauseResolver: fights,
		Bus:           bus,
		UUIDGenerator: ids,
		Logger:        logger,
	})

	dmg := damageService.NewService(&damageService.ServiceConfig{
		World:   reg,
		Effects: fx,
		Bus:     bus,
		Logger:  logger,
	})

	abilitySvc := abilityService.NewService(&abilityService.ServiceConfig{
		World:           reg,
		CastService:     casts,
		CooldownService: cooldowns,
		Bus:             bus,
		Logger:          logger,
	})
	abilities.Register(abilitySvc, fx, dmg)

	return &Provider{
		World:           reg,
		Bus:             bus,
		Catalog:         catalog,
		Effects:         fx,
		FightService:    fights,
		CooldownService: cooldowns,
		CastService:     casts,
		DamageService:   dmg,
		AbilityService:  abilitySvc,
		AI: ai.NewController(&ai.ControllerConfig{
			World:          reg,
			FightService:   fights,
			AbilityService: abilitySvc,
			Logger:         logger,
		}),
		Autopilot: ai.NewAutopilot(&ai.AutopilotConfig{
			World:          reg,
			AbilityService: abilitySvc,
			CastService:    casts,
			Logger:         logger,
		}),
	}
}
