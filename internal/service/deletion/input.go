package deletion

import (
	"strings"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

// ConfirmationPhrase must be typed by the user to delete an account.
const ConfirmationPhrase = "DELETE"

// DeleteAccountInput holds parameters for the account deletion operation.
type DeleteAccountInput struct {
	Confirmation string
}

// Validate validates the delete account input.
func (i DeleteAccountInput) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(i.Confirmation), ConfirmationPhrase) {
		return domain.NewValidationError("confirmation", `must be "`+ConfirmationPhrase+`"`)
	}
	return nil
}

// DeleteProfileInput holds parameters for the profile deletion operation.
type DeleteProfileInput struct {
	ProfileID uuid.UUID
}

// Validate validates the delete profile input.
func (i DeleteProfileInput) Validate() error {
	if i.ProfileID == uuid.Nil {
		return domain.NewValidationError("profile_id", "required")
	}
	return nil
}
