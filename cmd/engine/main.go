package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fiestalog/fiesta/internal/common/clock"
	"github.com/fiestalog/fiesta/internal/common/uuid"
	"github.com/fiestalog/fiesta/internal/engine"
	"github.com/fiestalog/fiesta/internal/progression"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	challengeService "github.com/fiestalog/fiesta/internal/services/challenge"
	notifierService "github.com/fiestalog/fiesta/internal/services/notifier"
	statsService "github.com/fiestalog/fiesta/internal/services/stats"
	"github.com/fiestalog/fiesta/internal/volume"
)

type config struct {
	RedisAddr     string     `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string     `env:"REDIS_PASSWORD"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LevelDivisor  int        `env:"LEVEL_DIVISOR" envDefault:"100"`
}

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	activities, err := activityRepo.NewRedis(&activityRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Error("failed to create activity repository", "error", err)
		os.Exit(1)
	}

	snapshots, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Error("failed to create stats repository", "error", err)
		os.Exit(1)
	}

	challenges, err := challengeRepo.NewRedis(&challengeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Error("failed to create challenge repository", "error", err)
		os.Exit(1)
	}

	calculator := progression.New(&progression.Config{
		LevelDivisor: cfg.LevelDivisor,
	}, logger)

	systemClock := &clock.DefaultClock{}

	statsSvc, err := statsService.NewService(&statsService.Config{
		ActivityRepo:  activities,
		StatsRepo:     snapshots,
		ChallengeRepo: challenges,
		Calculator:    calculator,
		VolumeLookup:  volume.NewTable(),
		Clock:         systemClock,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create stats service", "error", err)
		os.Exit(1)
	}

	notifierSvc, err := notifierService.NewService(&notifierService.ServiceConfig{})
	if err != nil {
		logger.Error("failed to create notifier service", "error", err)
		os.Exit(1)
	}

	eng, err := engine.New(&engine.Config{
		ActivityRepo: activities,
		Stats:        statsSvc,
		Notifier:     notifierSvc,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	challengeSvc, err := challengeService.NewService(&challengeService.Config{
		ChallengeRepo: challenges,
		StatsRepo:     snapshots,
		Stats:         statsSvc,
		Notifier:      eng,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create challenge service", "error", err)
		os.Exit(1)
	}

	tracker, err := challengeService.NewTracker(challengeSvc, snapshots, logger)
	if err != nil {
		logger.Error("failed to create challenge tracker", "error", err)
		os.Exit(1)
	}

	if err := eng.StartTracking(context.Background(), tracker); err != nil {
		logger.Error("failed to start tracking", "error", err)
		os.Exit(1)
	}

	logger.Info("engine is running", "redis_addr", cfg.RedisAddr)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := eng.Stop(); err != nil {
		logger.Error("error stopping engine", "error", err)
	}

	logger.Info("engine has been shut down")
}
