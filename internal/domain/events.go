package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a message announcing a completed deletion.
type Event interface {
	RoutingKey() string
}

// AccountDeleted is published once an account deletion reaches DONE.
type AccountDeleted struct {
	AccountID  uuid.UUID    `json:"accountId"`
	Mode       DeletionMode `json:"mode"`
	ProfileIDs []uuid.UUID  `json:"profileIds"`
	At         time.Time    `json:"at"`
}

func (AccountDeleted) RoutingKey() string { return "account.deleted" }

// ProfileDeleted is published once a profile deletion reaches DONE.
type ProfileDeleted struct {
	AccountID         uuid.UUID `json:"accountId"`
	ProfileID         uuid.UUID `json:"profileId"`
	RemovedVaultFiles int       `json:"removedVaultFiles"`
	At                time.Time `json:"at"`
}

func (ProfileDeleted) RoutingKey() string { return "profile.deleted" }
