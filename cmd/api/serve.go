package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/nagarseva/internal/api/http"
	"github.com/spec-kit/nagarseva/internal/api/http/handlers"
	"github.com/spec-kit/nagarseva/internal/config"
	"github.com/spec-kit/nagarseva/internal/events"
	"github.com/spec-kit/nagarseva/internal/fixtures"
	"github.com/spec-kit/nagarseva/internal/observability"
	"github.com/spec-kit/nagarseva/internal/persistence"
	"github.com/spec-kit/nagarseva/internal/ratelimit"
	"github.com/spec-kit/nagarseva/internal/repository"
	"github.com/spec-kit/nagarseva/internal/service"
	"github.com/spec-kit/nagarseva/internal/shell"
	"github.com/spec-kit/nagarseva/internal/views"
	"github.com/spec-kit/nagarseva/internal/web"
	"github.com/spec-kit/nagarseva/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	data, err := fixtures.Load(cfg.Fixtures.Path)
	if err != nil {
		return err
	}
	seed := cfg.Fixtures.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := fixtures.NewRandomGenerator(seed)

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store := repository.NewIssueStore(data.Issues)
	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)
	logger.Info("event subscribers",
		zap.Int(string(events.EventIssueReported), dispatcher.Subscribers(events.EventIssueReported)),
		zap.Int(string(events.EventIssueStatusChanged), dispatcher.Subscribers(events.EventIssueStatusChanged)))

	issueService := service.NewIssueService(service.IssueDependencies{
		IssueRepo:  store,
		Scorer:     generator,
		Locator:    generator,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	analyticsService := service.NewAnalyticsService(store, data, generator)
	builder := views.NewBuilder(views.Dependencies{
		Issues:        issueService,
		Analytics:     analyticsService,
		Community:     service.NewCommunityService(data),
		Notifications: notificationService,
	})

	session := shell.NewMiddleware(shell.NewCodec(cfg.Session.Secret, cfg.Session.TTL()), cfg.Session, logger)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		Views:                 web.NewEngine(cfg.App.Env == "development"),
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Issues:    handlers.NewIssuesHandler(issueService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService, metrics),
		Pages:     handlers.NewPagesHandler(builder, issueService, session, logger),
		Session:   session,
		Limiter:   newLimiter(cfg.RateLimit, redis),
		Logger:    logger,
	})

	logger.Info("starting server",
		zap.String("addr", cfg.App.Addr()),
		zap.Int("seed_issues", store.Len()),
		zap.Int64("fixtures_seed", seed))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.App.Addr())
	}()

	if err := waitForShutdown(logger, errCh); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

func newLimiter(cfg config.RateLimitConfig, redis *persistence.Redis) ratelimit.Limiter {
	if cfg.ReportsPerDay <= 0 {
		return ratelimit.Disabled{}
	}
	if redis.Enabled() {
		return ratelimit.NewRedisLimiter(redis.Client, cfg.KeyPrefix, cfg.ReportsPerDay, 24*time.Hour)
	}
	return ratelimit.NewMemoryLimiter(cfg.ReportsPerDay, 24*time.Hour)
}

func waitForShutdown(logger *zap.Logger, errCh <-chan error) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		return nil
	case err := <-errCh:
		return fmt.Errorf("fiber listen: %w", err)
	}
}
