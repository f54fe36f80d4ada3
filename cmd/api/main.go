// Command api serves the storefront HTTP API.
//
// @title                       Labcel Storefront API
// @version                     1.0
// @description                 Custom phone-case storefront: catalog, checkout, order workflow and admin dashboard.
// @BasePath                    /api
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        session_token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/labcel/storefront/internal/api"
	"github.com/labcel/storefront/internal/api/handler"
	"github.com/labcel/storefront/internal/core/service"
	"github.com/labcel/storefront/internal/infrastructure/db/mongo"
	"github.com/labcel/storefront/internal/infrastructure/db/redis"
	"github.com/labcel/storefront/internal/infrastructure/identity"
	"github.com/labcel/storefront/internal/infrastructure/notify"
	"github.com/labcel/storefront/internal/infrastructure/queue"
	"github.com/labcel/storefront/internal/pkg/config"
	"github.com/labcel/storefront/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "storefront-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	checks := map[string]handler.DependencyCheck{"mongodb": handler.MongoCheck(db)}

	// The session cache is optional: without Redis every lookup hits MongoDB.
	var sessionCache service.SessionCache
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, session cache disabled")
	} else {
		defer rdb.Close()
		sessionCache = redis.NewSessionCache(rdb)
		checks["redis"] = handler.RedisCheck(rdb)
	}

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	sessionRepo := mongo.NewSessionRepository(db)
	orderRepo := mongo.NewOrderRepository(db)
	notificationRepo := mongo.NewNotificationRepository(db)

	// --- Notifications ---
	notifications := service.NewNotificationDispatcher(
		notificationRepo,
		userRepo,
		notify.NewEmailTransport(log),
		notify.NewWhatsAppTransport(log),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.Notifications.Workers, cfg.Notifications.Buffer, notifications, log)
	dispatcher.Start(ctx)

	// --- Services ---
	sessions := service.NewSessionStore(sessionRepo, sessionCache, cfg.Session.TTL, cfg.Session.CacheTTL, log)
	identityClient := identity.NewClient(cfg.Identity.SessionURL, cfg.Identity.Timeout, log)

	services := api.Services{
		Auth:          service.NewAuthService(userRepo, sessions, identityClient, log),
		Users:         service.NewUserService(userRepo, log),
		Catalog:       service.NewCatalogService(mongo.NewTaxonomyRepository(db), mongo.NewProductRepository(db), log),
		Orders:        service.NewOrderService(orderRepo, dispatcher, log),
		Images:        service.NewImageService(mongo.NewImageRepository(db), int(cfg.Limits.UploadMaxBytes), log),
		Stats:         service.NewStatsService(mongo.NewStatsRepository(db)),
		Notifications: notifications,
	}

	cookies := handler.DevelopmentCookies()
	if cfg.IsProduction() {
		cookies = handler.ProductionCookies()
	}
	cookies.MaxAge = cfg.Session.TTL

	e := api.NewRouter(services, api.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		Cookies:         cookies,
		UploadMaxBytes:  cfg.Limits.UploadMaxBytes,
		AuthRateLimit:   rate.Limit(cfg.Limits.AuthRateLimit),
		UploadRateLimit: rate.Limit(cfg.Limits.UploadRateLimit),
		ReadinessChecks: checks,
	}, log)

	if cfg.Session.SweepInterval > 0 {
		go sessions.RunSweeper(ctx, cfg.Session.SweepInterval)
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			dispatcher.Stop()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// No new orders can publish now; let queued notifications drain.
	dispatcher.Stop()
	log.Info().Msg("server stopped")
	return nil
}
