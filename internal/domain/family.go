package domain

import "github.com/google/uuid"

// FamilyGroup is an optional shared-household grouping. A group with no
// memberships left is garbage.
type FamilyGroup struct {
	ID          uuid.UUID
	MemberCount int
}

// IsOrphan reports whether the group has no remaining members.
func (f FamilyGroup) IsOrphan() bool {
	return f.MemberCount == 0
}

// UniqueIDs de-duplicates ids preserving first occurrence.
func UniqueIDs(lists ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
