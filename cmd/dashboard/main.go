package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/air-quality-dashboard/internal/api/http"
	"github.com/spec-kit/air-quality-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/air-quality-dashboard/internal/auth"
	"github.com/spec-kit/air-quality-dashboard/internal/config"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/mail"
	"github.com/spec-kit/air-quality-dashboard/internal/observability"
	"github.com/spec-kit/air-quality-dashboard/internal/persistence"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
	"github.com/spec-kit/air-quality-dashboard/internal/web"
	"github.com/spec-kit/air-quality-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, closeSessions, err := persistence.NewSessionRepository(ctx, *cfg, logger)
	if err != nil {
		logger.Fatal("failed to init session store", zap.Error(err))
	}
	defer closeSessions()

	if cfg.Session.SecretGenerated {
		logger.Warn("SESSION_SECRET not set, using a random per-process secret; sessions reset on restart")
	}
	if cfg.Mail.Username == "" || cfg.Mail.To == "" {
		logger.Warn("mail credentials not configured, feedback delivery will fail")
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	noticeTTL := cfg.Notice.DisplayDuration()
	viewService := service.NewViewService(sessions)
	authService := service.NewAuthService(sessions, dispatcher, service.AuthOptions{
		NoticeDuration:        noticeTTL,
		ClearUsernameOnLogout: cfg.Session.ClearUsernameOnLogout,
	})
	navService := service.NewNavigationService(sessions, dispatcher, noticeTTL)
	themeService := service.NewThemeService(sessions, dispatcher, noticeTTL)
	feedbackService := service.NewFeedbackService(sessions, mail.NewSMTPTransport(cfg.Mail), dispatcher, noticeTTL)

	engine, err := web.NewEngine()
	if err != nil {
		logger.Fatal("failed to load views", zap.Error(err))
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		Views:                 engine,
		Immutable:             true,
		DisableStartupMessage: !cfg.App.IsDevelopment(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	tokens := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions),
		Pages:    handlers.NewPagesHandler(viewService, cfg.Report),
		Session:  handlers.NewSessionHandler(authService, navService, themeService),
		Feedback: handlers.NewFeedbackHandler(feedbackService),
		Insights: handlers.NewInsightsHandler(viewService),
		Metrics:  metrics,

		SessionMiddleware: auth.NewSessionMiddleware(tokens, sessions, auth.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}),
		Sessions: sessions,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
