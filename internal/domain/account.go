package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a person record (the account holder or a dependent).
// Depending on the deployment the owner is recorded in auth_id, user_id or both.
type Profile struct {
	ID        uuid.UUID
	AuthID    *uuid.UUID
	UserID    *uuid.UUID
	IsPrimary bool
	CreatedAt time.Time
}

// OwnerIDs returns the distinct non-nil owner references of the profile.
func (p Profile) OwnerIDs() []uuid.UUID {
	var ids []uuid.UUID
	if p.AuthID != nil {
		ids = append(ids, *p.AuthID)
	}
	if p.UserID != nil && (p.AuthID == nil || *p.UserID != *p.AuthID) {
		ids = append(ids, *p.UserID)
	}
	return ids
}

// IsOwnedBy reports whether accountID appears in either ownership column.
func (p Profile) IsOwnedBy(accountID uuid.UUID) bool {
	for _, id := range p.OwnerIDs() {
		if id == accountID {
			return true
		}
	}
	return false
}

// UnionProfiles merges profile lists, keeping the first occurrence of each id.
func UnionProfiles(lists ...[]Profile) []Profile {
	seen := make(map[uuid.UUID]struct{})
	var out []Profile
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// ProfileIDs extracts ids preserving order.
func ProfileIDs(profiles []Profile) []uuid.UUID {
	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}
