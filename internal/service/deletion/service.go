// Package deletion erases an account, or a single non-primary profile, with
// every database row and vault file that can be traced back to it.
//
// A deletion runs as a fixed sequence of stages. Nothing is rolled back when a
// later stage fails; every stage only deletes, so re-running a failed
// deletion is safe and simply finds less to do. The irreversible step
// (removing the identity or the profile row) runs last and only after a
// verification pass found nothing left behind.
package deletion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
	"github.com/medvault/medvault-backend/internal/metrics"
)

// profileRepo defines the profile repository interface needed by the deletion service.
type profileRepo interface {
	ListByOwner(ctx context.Context, column domain.OwnerColumn, accountID uuid.UUID) ([]domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	OwnerOf(ctx context.Context, id uuid.UUID, column domain.OwnerColumn) (*uuid.UUID, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByOwner(ctx context.Context, column domain.OwnerColumn, accountIDs []uuid.UUID) (int64, error)
}

// rowDeleter removes rows of an arbitrary table by one column.
type rowDeleter interface {
	DeleteWhereIn(ctx context.Context, table, column string, values []any) (int64, error)
}

// familyRepo defines the family repository interface needed by the reaper.
type familyRepo interface {
	MemberFamilies(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	LinkedFamilies(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	RemoveMemberships(ctx context.Context, accountID uuid.UUID) (int64, error)
	RemoveLinks(ctx context.Context, accountID uuid.UUID) (int64, error)
	RemoveJoinRequests(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountMembers(ctx context.Context, familyID uuid.UUID) (int, error)
	DeleteJoinRequests(ctx context.Context, familyID uuid.UUID) (int64, error)
	DeleteLinks(ctx context.Context, familyID uuid.UUID) (int64, error)
	DeleteMembers(ctx context.Context, familyID uuid.UUID) (int64, error)
	DeleteFamily(ctx context.Context, familyID uuid.UUID) (int64, error)
	ListOrphans(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// objectCatalog lists object names straight from the store's catalog table.
type objectCatalog interface {
	ListAll(ctx context.Context, bucket, prefix string, pageSize int) ([]string, error)
}

// vaultStore is the object store's folder listing and remove API.
type vaultStore interface {
	List(ctx context.Context, folder string, limit, offset int, search string) ([]domain.VaultEntry, error)
	Remove(ctx context.Context, paths []string) error
}

// identityAdmin deletes authentication identities.
type identityAdmin interface {
	DeleteUser(ctx context.Context, id uuid.UUID, soft bool) error
}

// txManager defines the transaction manager interface needed by the reaper.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// inflightGuard rejects a second deletion for the same account while one runs.
type inflightGuard interface {
	Acquire(ctx context.Context, key string) (func(context.Context) error, error)
}

// eventPublisher announces finished deletions.
type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Deps bundles the collaborators of the deletion service. Guard, Events and
// Metrics are optional.
type Deps struct {
	Profiles profileRepo
	Rows     rowDeleter
	Families familyRepo
	Catalog  objectCatalog
	Vault    vaultStore
	Identity identityAdmin
	Tx       txManager
	Guard    inflightGuard
	Events   eventPublisher
	Metrics  *metrics.Deletion
}

// Service orchestrates account and profile deletion.
type Service struct {
	log      *slog.Logger
	cfg      config.VaultConfig
	profiles profileRepo
	rows     rowDeleter
	families familyRepo
	catalog  objectCatalog
	vault    vaultStore
	identity identityAdmin
	tx       txManager
	guard    inflightGuard
	events   eventPublisher
	metrics  *metrics.Deletion
}

// NewService creates a new deletion service instance.
func NewService(logger *slog.Logger, cfg config.VaultConfig, deps Deps) *Service {
	s := &Service{
		log:      logger.With("service", "deletion"),
		cfg:      cfg,
		profiles: deps.Profiles,
		rows:     deps.Rows,
		families: deps.Families,
		catalog:  deps.Catalog,
		vault:    deps.Vault,
		identity: deps.Identity,
		tx:       deps.Tx,
		guard:    deps.Guard,
		events:   deps.Events,
		metrics:  deps.Metrics,
	}
	if s.guard == nil {
		s.guard = noGuard{}
	}
	return s
}

type noGuard struct{}

func (noGuard) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

func (s *Service) publish(ctx context.Context, ev domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "deletion event not published",
			slog.String("routing_key", ev.RoutingKey()),
			slog.String("error", err.Error()),
		)
	}
}
