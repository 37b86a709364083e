// Package server boots the HTTP service: configuration, record store,
// blob store, middleware stack, routes, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/moyashi0060/kittchen-POS-app/app/routes"
	"github.com/moyashi0060/kittchen-POS-app/config"
	"github.com/moyashi0060/kittchen-POS-app/pkg/cache"
	"github.com/moyashi0060/kittchen-POS-app/pkg/database"
	"github.com/moyashi0060/kittchen-POS-app/pkg/logger"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
	"github.com/moyashi0060/kittchen-POS-app/pkg/middleware"
	"github.com/moyashi0060/kittchen-POS-app/pkg/reqid"
	"github.com/moyashi0060/kittchen-POS-app/pkg/router"
	"github.com/moyashi0060/kittchen-POS-app/pkg/storage"
)

// Start runs the HTTP server until SIGINT/SIGTERM. An unreachable
// record store or a misconfigured blob store is fatal here — the
// service refuses to start rather than failing per request.
func Start() error {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		return err
	}

	disk, err := storage.New()
	if err != nil {
		return err
	}

	// Redis only backs the rate limiter; run degraded without it.
	if err := cache.Connect(context.Background()); err != nil {
		logger.Warn("redis unavailable, rate limiting falls back to in-process windows", "error", err)
	}

	r := NewRouter(db, disk)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// NewRouter assembles the middleware stack and the full route table
// around the injected store handles.
func NewRouter(db *gorm.DB, disk storage.Disk) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.GetInt("RATE_LIMIT_PER_MINUTE", 300), time.Minute))

	routes.RegisterAPI(r, db, disk)
	return r
}
