package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/fincalc-service/internal/api/http"
	"github.com/spec-kit/fincalc-service/internal/api/http/handlers"
	"github.com/spec-kit/fincalc-service/internal/auth"
	"github.com/spec-kit/fincalc-service/internal/cache"
	"github.com/spec-kit/fincalc-service/internal/config"
	"github.com/spec-kit/fincalc-service/internal/events"
	"github.com/spec-kit/fincalc-service/internal/observability"
	"github.com/spec-kit/fincalc-service/internal/persistence"
	"github.com/spec-kit/fincalc-service/internal/repository"
	"github.com/spec-kit/fincalc-service/internal/service"
	"github.com/spec-kit/fincalc-service/internal/worker"
)

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

	metrics := observability.NewMetrics()

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
	auditRepo := repository.NewAuditLogRepository(pool)

	dispatcher := events.NewAsyncDispatcher()

	var resultCache cache.CalculationCache
	if cfg.Cache.Enabled {
		resultCache = cache.NewRedisCalculationCache(redis.Client, cfg.Cache.TTL())
	}

	userService := service.NewUserService(*cfg, userRepo)
	calculatorService := service.NewCalculatorService(dispatcher, resultCache, logger)
	auditService := service.NewAuditService(auditRepo, dispatcher, logger, metrics, cfg.Audit.Timeout())
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewMiddleware(userService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Users:          handlers.NewUsersHandler(userService),
		Calculator:     handlers.NewCalculatorHandler(calculatorService),
		AuthMiddleware: authMiddleware,
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
