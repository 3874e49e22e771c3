package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medvault/medvault-backend/internal/auth"
	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/transport/middleware"
	"github.com/medvault/medvault-backend/internal/transport/rest"
)

// RouterDeps holds what the HTTP router mounts.
type RouterDeps struct {
	Deletion *rest.DeletionHandler
	Health   *rest.HealthHandler
	Tokens   *auth.JWTManager
	Limiter  *middleware.RateLimiter
	// Metrics is mounted at cfg.Metrics.Path when non-nil.
	Metrics http.Handler
}

// NewRouter builds the HTTP routes of the deletion API.
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Auth runs before Logger so access logs carry the account id.
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(deps.Tokens),
		middleware.Logger(logger),
	)

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	if deps.Metrics != nil {
		r.Handle(cfg.Metrics.Path, deps.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(
			middleware.RequireAccount,
			deps.Limiter.Limit(cfg.RateLimit.DeletePerMinute),
		))

		r.Post("/account/delete", deps.Deletion.DeleteAccount)
		r.Post("/profile/delete", deps.Deletion.DeleteProfile)
	})

	return r
}
