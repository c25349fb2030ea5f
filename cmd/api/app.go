package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/cache"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/database"
	adapterHTTP "github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/seed"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/config"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/workers"
)

// app holds everything main wires together so it can be torn down in one
// place.
type app struct {
	router *gin.Engine
	db     *sqlx.DB
	redis  *redis.Client
}

type stores struct {
	goals domain.GoalRepository
	logs  domain.GoalLogRepository
	users domain.UserRepository
}

func openStores(cfg *config.Config) (stores, *sqlx.DB, error) {
	if cfg.DBDriver == config.DriverMemory {
		slog.Warn("using in-memory storage, data is lost on restart")
		goals := repository.NewInMemoryGoalRepository()
		return stores{
			goals: goals,
			logs:  repository.NewInMemoryGoalLogRepository(goals),
			users: repository.NewInMemoryUserRepository(),
		}, nil, nil
	}

	db, err := database.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return stores{}, nil, err
	}
	return stores{
		goals: repository.NewSQLGoalRepository(db),
		logs:  repository.NewSQLGoalLogRepository(db),
		users: repository.NewSQLUserRepository(db),
	}, db, nil
}

// newApp builds the HTTP stack. The streak worker runs until ctx is done.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	st, db, err := openStores(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, running without cache and rate limiting", "error", err)
			rdb = nil
		} else {
			st.goals = repository.NewCachedGoalRepository(st.goals, rdb)
			slog.Info("redis connected", "host", cfg.RedisHost, "db", cfg.RedisDB)
		}
	}

	streakWorker := workers.NewStreakWorker(st.goals, st.logs, cfg.StreakQueueSize)
	streakWorker.Start(ctx)

	userService := services.NewUserService(st.users)
	goalService := services.NewGoalService(st.goals, st.logs)
	logService := services.NewLogService(st.logs, st.goals, streakWorker)
	progressService := services.NewProgressService(st.goals, st.logs)

	a := &app{db: db, redis: rdb}

	if cfg.SeedFile != "" {
		fx, err := seed.LoadFile(cfg.SeedFile)
		if err == nil {
			_, err = seed.Apply(ctx, fx, seed.Services{
				Users: userService,
				Goals: goalService,
				Logs:  logService,
			})
		}
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		UserHandler:     adapterHTTP.NewUserHandler(userService),
		GoalHandler:     adapterHTTP.NewGoalHandler(goalService),
		LogHandler:      adapterHTTP.NewLogHandler(logService),
		ProgressHandler: adapterHTTP.NewProgressHandler(progressService),
		DB:              db,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		Logger:          logger,
		StartTime:       time.Now(),
	})

	return a, nil
}

func (a *app) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
