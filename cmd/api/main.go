package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/registration-service/internal/api/http"
	"github.com/spec-kit/registration-service/internal/api/http/handlers"
	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/classify"
	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/observability"
	"github.com/spec-kit/registration-service/internal/persistence"
	"github.com/spec-kit/registration-service/internal/repository"
	"github.com/spec-kit/registration-service/internal/service"
	"github.com/spec-kit/registration-service/internal/worker"
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
	recordRepo := repository.NewServiceRecordRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	engine := classify.NewDefaultEngine()

	adminService := service.NewAdminService(service.AdminDependencies{
		RecordRepo: recordRepo,
		Engine:     engine,
		Cache:      redis,
		CacheTTL:   cfg.Cache.AdminListTTL(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	pricingService := service.NewPricingService(couponRepo, dispatcher, logger)
	authService := service.NewAuthService(*cfg, staffRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), staffRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Staff:          handlers.NewStaffHandler(authService),
		Admin:          handlers.NewAdminServicesHandler(adminService),
		Checkout:       handlers.NewCheckoutHandler(pricingService),
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
