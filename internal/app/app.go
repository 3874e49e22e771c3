package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medvault/medvault-backend/internal/auth"
	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/transport/middleware"
	"github.com/medvault/medvault-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// deletion stack, and serves HTTP until ctx is cancelled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("vault_bucket", cfg.Vault.Bucket),
	)

	var (
		registry       *prometheus.Registry
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	stack, err := NewStack(ctx, cfg, logger, registerer(registry))
	if err != nil {
		return fmt.Errorf("build deletion stack: %w", err)
	}
	defer stack.Close()

	health := rest.NewHealthHandler(stack.Pool, BuildVersion())
	if stack.Guard != nil {
		health.WithCheck("redis", stack.Guard)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(cfg, logger, RouterDeps{
		Deletion: rest.NewDeletionHandler(stack.Service, logger),
		Health:   health,
		Tokens:   auth.NewJWTManager(cfg.Supabase),
		Limiter:  limiter,
		Metrics:  metricsHandler,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	// In-flight deletions get ShutdownTimeout to complete.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// registerer avoids handing a typed nil registry to NewStack.
func registerer(r *prometheus.Registry) prometheus.Registerer {
	if r == nil {
		return nil
	}
	return r
}
