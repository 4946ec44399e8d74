package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/skirmish/internal/config"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/repositories/fights"
	"github.com/KirkDiggler/skirmish/internal/services"
	"github.com/KirkDiggler/skirmish/internal/services/history"
	"github.com/KirkDiggler/skirmish/internal/simulation"
	"github.com/KirkDiggler/skirmish/internal/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

// outcome is what one engine produced
type outcome struct {
	engine    *simulation.Engine
	fightID   string
	simulated time.Duration
	steps     uint64
}

func run() error {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flag.IntVar(&cfg.Simulation.Fights, "fights", cfg.Simulation.Fights, "number of fights to run concurrently")
	flag.DurationVar(&cfg.Simulation.Step, "step", cfg.Simulation.Step, "fixed simulation step")
	flag.DurationVar(&cfg.Simulation.MaxDuration, "max", cfg.Simulation.MaxDuration, "simulated time limit per fight")
	flag.BoolVar(&cfg.Simulation.SeedIDs, "seed-ids", cfg.Simulation.SeedIDs, "use sequential ids for reproducible runs")
	flag.StringVar(&cfg.Redis.URL, "redis", cfg.Redis.URL, "redis URL for fight records, in memory when empty")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo := openRepository(ctx, cfg, logger)
	defer closeRepo()

	outcomes := make([]*outcome, cfg.Simulation.Fights)

	g, gctx := errgroup.WithContext(ctx)
	for i := range outcomes {
		g.Go(func() error {
			out, err := runFight(gctx, cfg, i, logger)
			if err != nil {
				return fmt.Errorf("fight %d: %w", i, err)
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outcomes {
		hist := history.NewService(&history.ServiceConfig{
			World:      out.engine.World,
			Repository: repo,
			Logger:     logger,
		})

		fight, _ := out.engine.World.Fight(out.fightID)
		if !fight.IsEnded() {
			fmt.Printf("fight %d (%s): no winner after %s\n", i, out.fightID, out.simulated)
			continue
		}

		record, err := hist.Save(ctx, out.fightID)
		if err != nil {
			return err
		}
		printRecord(i, record, out.steps)
	}

	return nil
}

func runFight(ctx context.Context, cfg *config.Config, n int, logger *slog.Logger) (*outcome, error) {
	var ids uuid.Generator = uuid.NewGoogleUUIDGenerator()
	if cfg.Simulation.SeedIDs {
		ids = uuid.NewSequentialGenerator(fmt.Sprintf("sim%d", n))
	}

	logger = logger.With("run", n)
	engine := simulation.NewEngine(&simulation.EngineConfig{
		Provider: services.NewProvider(&services.ProviderConfig{
			IDGenerator: ids,
			Logger:      logger,
		}),
		Step:   cfg.Simulation.Step,
		Logger: logger,
	})

	basic, err := engine.World.SpawnBasicFight(fmt.Sprintf("arena %d", n), engine.Catalog)
	if err != nil {
		return nil, err
	}

	simulated, err := engine.RunUntilEnded(ctx, cfg.Simulation.MaxDuration, func(report *simulation.StepReport) {
		for _, v := range report.Rejections {
			logger.Debug("rejected", "validation", v.String())
		}
		for _, fight := range report.EndedFights {
			logger.Info("fight ended", "fight_id", fight.ID, "winner", fight.Result.Winner, "elapsed", fight.Result.Elapsed)
		}
		engine.Autoplay(basic.Fight.ID)
	})
	if err != nil {
		return nil, err
	}

	return &outcome{
		engine:    engine,
		fightID:   basic.Fight.ID,
		simulated: simulated,
		steps:     engine.Steps(),
	}, nil
}

// openRepository connects to Redis when a URL is configured and falls back to memory
func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fights.Repository, func()) {
	if cfg.Redis.URL == "" {
		logger.Info("no redis URL configured, keeping fight records in memory")
		return fights.NewInMemoryRepository(), func() {}
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("failed to parse redis URL, falling back to memory", "error", err)
		return fights.NewInMemoryRepository(), func() {}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logger.Warn("failed to connect to redis, falling back to memory", "error", err)
		return fights.NewInMemoryRepository(), func() {}
	}

	logger.Info("using redis for fight records", "addr", opts.Addr)
	repo := fights.NewRedis(&fights.RedisConfig{Client: client, TTL: cfg.Redis.ResultTTL})

	return repo, func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
}

func printRecord(n int, record *entities.FightRecord, steps uint64) {
	fmt.Printf("fight %d (%s): %s won after %s (%d steps)\n",
		n, record.ID, record.Winner, record.Elapsed.Round(time.Millisecond), steps)
	for _, m := range record.Members {
		state := "alive"
		if !m.Alive {
			state = "dead"
		}
		fmt.Printf("  %-8s %-6s %5.1f/%.0f %s\n", m.Name, m.Faction, m.Health, m.MaxHealth, state)
	}
}
