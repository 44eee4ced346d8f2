package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/timezone-service/internal/api/http"
	"github.com/spec-kit/timezone-service/internal/api/http/handlers"
	"github.com/spec-kit/timezone-service/internal/auth"
	"github.com/spec-kit/timezone-service/internal/config"
	"github.com/spec-kit/timezone-service/internal/events"
	"github.com/spec-kit/timezone-service/internal/observability"
	"github.com/spec-kit/timezone-service/internal/persistence"
	"github.com/spec-kit/timezone-service/internal/repository"
	"github.com/spec-kit/timezone-service/internal/service"
	"github.com/spec-kit/timezone-service/internal/worker"
)

const timezoneCacheTTL = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	timezoneRepo := repository.NewTimezoneRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	timezoneCache := persistence.NewTimezoneCache(redis, timezoneCacheTTL, logger)
	timezoneService := service.NewTimezoneService(timezoneRepo, timezoneCache, dispatcher)

	identityResolver := auth.NewIdentityResolver(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, identityResolver, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:     handlers.NewUsersHandler(authService),
		Timezones: handlers.NewTimezonesHandler(timezoneService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
