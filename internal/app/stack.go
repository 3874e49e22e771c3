package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medvault/medvault-backend/internal/adapter/events"
	"github.com/medvault/medvault-backend/internal/adapter/identity"
	"github.com/medvault/medvault-backend/internal/adapter/postgres"
	"github.com/medvault/medvault-backend/internal/adapter/postgres/family"
	"github.com/medvault/medvault-backend/internal/adapter/postgres/objects"
	"github.com/medvault/medvault-backend/internal/adapter/postgres/profile"
	"github.com/medvault/medvault-backend/internal/adapter/postgres/rows"
	"github.com/medvault/medvault-backend/internal/adapter/redislock"
	"github.com/medvault/medvault-backend/internal/adapter/storage"
	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
	"github.com/medvault/medvault-backend/internal/metrics"
	"github.com/medvault/medvault-backend/internal/service/deletion"
)

// publisher is an events sink that owns a connection.
type publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
	Close()
}

// Stack is the deletion service together with the resources it holds open.
// It is shared by the HTTP server and the operator commands.
type Stack struct {
	Service *deletion.Service
	Storage *storage.Client
	Pool    *pgxpool.Pool
	// Guard is nil when redis is not configured.
	Guard *redislock.Guard

	redis  *redis.Client
	events publisher
}

// NewStack connects to the database, redis and the broker and builds the
// deletion service. registry may be nil to skip metrics.
func NewStack(ctx context.Context, cfg *config.Config, logger *slog.Logger, registry prometheus.Registerer) (*Stack, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	st := &Stack{
		Pool:    pool,
		Storage: storage.NewClient(cfg.Supabase, cfg.Vault.Bucket, logger),
	}

	deps := deletion.Deps{
		Profiles: profile.New(pool),
		Rows:     rows.NewDeleter(pool),
		Families: family.New(pool),
		Catalog:  objects.NewCatalog(pool),
		Vault:    st.Storage,
		Identity: identity.NewClient(cfg.Supabase, logger),
		Tx:       postgres.NewTxManager(pool),
	}

	if cfg.Redis.Enabled() {
		st.redis = redislock.NewRedisClient(cfg.Redis)
		st.Guard = redislock.NewGuard(st.redis, cfg.Redis.LockTTL)
		if err := st.Guard.Ping(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		deps.Guard = st.Guard
	} else {
		logger.Warn("redis not configured, concurrent deletions are not guarded")
	}

	st.events = newPublisher(cfg.Events, logger)
	deps.Events = st.events

	if registry != nil {
		deps.Metrics = metrics.NewDeletion(registry)
	}

	st.Service = deletion.NewService(logger, cfg.Vault, deps)
	return st, nil
}

// newPublisher returns a RabbitMQ producer, or the logging publisher when no
// broker is configured or it cannot be reached.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) publisher {
	if !cfg.Enabled() {
		return events.NewLogPublisher(logger)
	}
	p, err := events.NewProducer(cfg.AMQPURL, cfg.Exchange, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, logging events instead",
			slog.String("error", err.Error()),
		)
		return events.NewLogPublisher(logger)
	}
	return p
}

// Close releases every connection held by the stack.
func (s *Stack) Close() {
	if s.events != nil {
		s.events.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	s.Pool.Close()
}
