package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thrivelog/thrivelog/internal/cache"
	"github.com/thrivelog/thrivelog/internal/config"
	"github.com/thrivelog/thrivelog/internal/db"
	"github.com/thrivelog/thrivelog/internal/markdown"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service"
	"github.com/thrivelog/thrivelog/internal/service/ai"
)

const cachePrefix = "thrivelog:"

type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	Cache                 cache.Cache
	AIProvider            ai.Provider
	AuthService           *service.AuthService
	UserService           *service.UserService
	HabitService          *service.HabitService
	MBTIService           *service.MBTIService
	JournalService        *service.JournalService
	RecommendationService *service.RecommendationService
	StatusService         *service.StatusService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.MigrateOnStart {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			_ = db.Close(database)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		_ = db.Close(database)
		return nil, fmt.Errorf("failed to initialize ai provider: %w", err)
	}

	return Wire(cfg, database, provider, newCache(ctx, cfg)), nil
}

// newCache connects to Redis when configured. An unreachable Redis disables
// caching instead of failing startup.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Noop{}
	}

	c, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cachePrefix)
	if err != nil {
		slog.Warn("redis unavailable, insights caching disabled", "error", err, "addr", cfg.RedisAddr)
		return cache.Noop{}
	}

	slog.Info("redis cache connected", "addr", cfg.RedisAddr)
	return c
}

// Wire builds repositories and services on top of an open database.
func Wire(cfg *config.Config, database *sqlx.DB, provider ai.Provider, insightsCache cache.Cache) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	mbtiRepository := repository.NewMBTIRepository(database)
	journalRepository := repository.NewJournalRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
	habitService := service.NewHabitService(habitRepository)
	mbtiService := service.NewMBTIService(mbtiRepository)
	journalService := service.NewJournalService(journalRepository, provider, markdown.NewParser())
	recommendationService := service.NewRecommendationService(
		mbtiRepository,
		habitRepository,
		journalRepository,
		provider,
		insightsCache,
		cfg.InsightsCacheTTL,
	)
	userService := service.NewUserService(userRepository, mbtiRepository, habitService, journalService)
	statusService := service.NewStatusService(provider)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		Cache:                 insightsCache,
		AIProvider:            provider,
		AuthService:           authService,
		UserService:           userService,
		HabitService:          habitService,
		MBTIService:           mbtiService,
		JournalService:        journalService,
		RecommendationService: recommendationService,
		StatusService:         statusService,
	}
}

func (a *App) Close() error {
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	errs = append(errs, db.Close(a.DB))
	return errors.Join(errs...)
}
