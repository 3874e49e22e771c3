package domain

// OwnerColumn names a column of the profiles table that references an account.
type OwnerColumn string

const (
	// OwnerColumnAuthID is the newer ownership column; absent in older deployments.
	OwnerColumnAuthID OwnerColumn = "auth_id"
	// OwnerColumnUserID is the legacy ownership column.
	OwnerColumnUserID OwnerColumn = "user_id"
)

func (c OwnerColumn) String() string { return string(c) }

// OwnerColumns lists ownership columns in query order: newer first.
func OwnerColumns() []OwnerColumn {
	return []OwnerColumn{OwnerColumnAuthID, OwnerColumnUserID}
}

// DeletionMode reports how the identity was removed.
type DeletionMode string

const (
	DeletionModeHard DeletionMode = "hard"
	DeletionModeSoft DeletionMode = "soft"
)

func (m DeletionMode) String() string { return string(m) }

func (m DeletionMode) IsValid() bool {
	switch m {
	case DeletionModeHard, DeletionModeSoft:
		return true
	}
	return false
}

// DeletionFlow distinguishes the two orchestrator entry points.
type DeletionFlow string

const (
	DeletionFlowAccount DeletionFlow = "account"
	DeletionFlowProfile DeletionFlow = "profile"
)

func (f DeletionFlow) String() string { return string(f) }

// DeletionStage is a state of the deletion state machine.
type DeletionStage string

const (
	StageStart            DeletionStage = "START"
	StageResolveOwnership DeletionStage = "RESOLVE_OWNERSHIP"
	StageCleanVault       DeletionStage = "CLEAN_VAULT"
	StageCascadeTables    DeletionStage = "CASCADE_TABLES"
	StageReapFamilies     DeletionStage = "REAP_FAMILIES"
	StageVerify           DeletionStage = "VERIFY"
	StageFinalize         DeletionStage = "FINALIZE"
	StageDone             DeletionStage = "DONE"
	StageFailed           DeletionStage = "FAILED"
)

func (s DeletionStage) String() string { return string(s) }

func (s DeletionStage) IsValid() bool {
	switch s {
	case StageStart, StageResolveOwnership, StageCleanVault, StageCascadeTables,
		StageReapFamilies, StageVerify, StageFinalize, StageDone, StageFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s DeletionStage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}
