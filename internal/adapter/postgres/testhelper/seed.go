package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medvault/medvault-backend/internal/domain"
)

// ProfileSeed describes a profile row to insert. Nil owner columns are
// stored as NULL.
type ProfileSeed struct {
	AuthID    *uuid.UUID
	UserID    *uuid.UUID
	IsPrimary bool
}

// SeedProfile inserts a profile and returns it as a domain.Profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, seed ProfileSeed) domain.Profile {
	t.Helper()
	ctx := context.Background()

	p := domain.Profile{
		ID:        uuid.New(),
		AuthID:    seed.AuthID,
		UserID:    seed.UserID,
		IsPrimary: seed.IsPrimary,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO profiles (id, auth_id, user_id, is_primary, full_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		p.ID, p.AuthID, p.UserID, p.IsPrimary, "Test "+p.ID.String()[:8],
	).Scan(&p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedAccount inserts a primary profile owned by a fresh account through
// auth_id and returns the account id with the profile.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) (uuid.UUID, domain.Profile) {
	t.Helper()

	accountID := uuid.New()
	p := SeedProfile(t, pool, ProfileSeed{AuthID: &accountID, IsPrimary: true})
	return accountID, p
}

// SeedRow inserts a row into one of the per-profile record tables with the
// given owner columns. Columns the table does not have must be left empty.
func SeedRow(t *testing.T, pool *pgxpool.Pool, table string, profileID, userID *uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (profile_id, user_id) VALUES ($1, $2)`, table),
		profileID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRow %s: %v", table, err)
	}
}

// SeedReport inserts a processed_reports row keyed only by the legacy owner key.
func SeedReport(t *testing.T, pool *pgxpool.Pool, ownerKey string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO processed_reports (owner_key, file_path) VALUES ($1, $2)`,
		ownerKey, ownerKey+"/reports/seed.pdf",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}
}

// SeedFamily creates a family with the given members and returns its id.
func SeedFamily(t *testing.T, pool *pgxpool.Pool, members ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	familyID := uuid.New()
	if _, err := pool.Exec(ctx, `INSERT INTO families (id, name) VALUES ($1, $2)`, familyID, "family-"+familyID.String()[:8]); err != nil {
		t.Fatalf("testhelper: SeedFamily insert family: %v", err)
	}

	for _, m := range members {
		if _, err := pool.Exec(ctx, `INSERT INTO family_members (family_id, user_id) VALUES ($1, $2)`, familyID, m); err != nil {
			t.Fatalf("testhelper: SeedFamily insert member: %v", err)
		}
	}

	return familyID
}

// SeedFamilyLink links requester to target inside a family.
func SeedFamilyLink(t *testing.T, pool *pgxpool.Pool, familyID, requesterID, targetID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO family_links (family_id, requester_id, target_id) VALUES ($1, $2, $3)`,
		familyID, requesterID, targetID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFamilyLink: %v", err)
	}
}

// SeedJoinRequest records a pending request of userID to join familyID.
func SeedJoinRequest(t *testing.T, pool *pgxpool.Pool, familyID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO family_join_requests (family_id, user_id) VALUES ($1, $2)`,
		familyID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJoinRequest: %v", err)
	}
}

// SeedObject registers an object name in the storage catalog for bucket.
func SeedObject(t *testing.T, pool *pgxpool.Pool, bucket, name string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO storage.objects (bucket_id, name, metadata) VALUES ($1, $2, '{"size": 1}'::jsonb)`,
		bucket, name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObject: %v", err)
	}
}

// CountRows returns the number of rows in table matching column = value.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, column string, value any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, table, column),
		value,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s.%s: %v", table, column, err)
	}
	return n
}
