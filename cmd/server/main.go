// @title Fit Studio API
// @version 1.0
// @description Trainer schedule booking and admin revenue analytics.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitstudio/config"
	_ "fitstudio/docs"
	"fitstudio/internal/adapters/auth"
	"fitstudio/internal/adapters/cache"
	"fitstudio/internal/adapters/email"
	"fitstudio/internal/adapters/legacyapi"
	deliveryhttp "fitstudio/internal/delivery/http"
	"fitstudio/internal/delivery/http/controllers"
	"fitstudio/internal/domain"
	"fitstudio/internal/repository/postgres"
	"fitstudio/internal/services"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	logger := config.NewLogger()
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("database connected")

	// Repositories
	trainerRepo := postgres.NewTrainerRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	requestRepo := postgres.NewBookingRequestRepository(db)

	// Analytics source and optional cache
	var source domain.AnalyticsSource
	switch cfg.AnalyticsSource {
	case config.AnalyticsSourceLegacy:
		source = legacyapi.NewHTTPSource(&http.Client{Timeout: cfg.ContextTimeout}, cfg.LegacyAPIURL)
	default:
		source = postgres.NewAnalyticsRepository(db)
	}
	logger.Info("analytics source", "source", cfg.AnalyticsSource)

	var analyticsCache domain.AnalyticsCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without analytics cache", "err", err)
		} else {
			defer client.Close()
			analyticsCache = cache.NewRedisCache(client, cfg.AnalyticsCacheTTL)
			logger.Info("analytics cache enabled", "ttl", cfg.AnalyticsCacheTTL.String())
		}
	}

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Services
	bookingService := services.NewBookingService(trainerRepo, scheduleRepo, requestRepo,
		services.NewMemorySelectionStore(), emailService, logger, cfg.ContextTimeout)
	analyticsService := services.NewAnalyticsService(source, analyticsCache, logger, cfg.ContextTimeout)

	// HTTP
	mux := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Booking:   controllers.NewBookingController(logger, bookingService),
		Analytics: controllers.NewAnalyticsController(logger, analyticsService),
		Health:    controllers.NewHealthController(logger, db),
		Verifier:  auth.NewJWTVerifier(cfg.JWTSecret, 30*time.Second),
		Logger:    logger,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(mux, cfg.CORSAllowedOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
