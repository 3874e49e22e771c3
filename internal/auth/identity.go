package auth

import "github.com/google/uuid"

// Identity is the caller described by a verified access token.
type Identity struct {
	AccountID uuid.UUID
	Role      string
	Phone     string
}

// IsAuthenticated reports whether the token belongs to a signed-in user
// rather than the anonymous or service role.
func (i Identity) IsAuthenticated() bool {
	return i.Role == RoleAuthenticated
}
