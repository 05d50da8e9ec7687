package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"udyam/internal/location"
	"udyam/internal/platform/config"
	"udyam/internal/platform/httpserver"
	"udyam/internal/platform/logger"
	"udyam/internal/platform/metrics"
	platformredis "udyam/internal/platform/redis"
	"udyam/internal/registration"
	"udyam/internal/schema"
	"udyam/internal/schema/extractor"
	schemastore "udyam/internal/schema/store"
	httptransport "udyam/internal/transport/http"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("redis connected")
	}

	// Registration storage: Postgres when configured, in-memory otherwise.
	var regStore registration.Store = registration.NewInMemoryStore()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err.Error())
			os.Exit(1)
		}
		defer pool.Close()
		regStore = registration.NewPostgresStore(pool)
		log.Info("postgres connected")
	} else {
		log.Warn("DATABASE_URL not set, registrations are held in memory")
	}

	var schStore schemastore.Store = schemastore.NewInMemoryStore()
	if redisClient != nil {
		schStore = schemastore.NewRedisStore(redisClient.Client)
	}
	source := extractor.RodSource{URL: cfg.PortalURL, Timeout: cfg.ScrapeTimeout}

	locOpts := []location.Option{location.WithMetrics(m)}
	if redisClient != nil {
		locOpts = append(locOpts, location.WithCache(redisClient.Client, cfg.LocationCacheTTL))
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		Registration: registration.NewService(regStore, log, m),
		Schema:       schema.NewService(source, schStore, log, m, schema.WithSnapshot(cfg.SchemaSnapshotPath)),
		Location:     location.NewClient(cfg.LocationAPIURL, log, locOpts...),
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("server stopped")
}
