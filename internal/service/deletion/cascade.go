package deletion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

// Owner columns of the per-profile record tables.
const (
	columnProfileID = "profile_id"
	columnUserID    = "user_id"
	columnOwnerKey  = "owner_key"
)

// scopedTable is a record table that references a profile and/or an account.
type scopedTable struct {
	name string
	// ownerKey marks tables that also carry the legacy free-text owner key.
	ownerKey bool
}

// scopedTables is ordered children first.
var scopedTables = []scopedTable{
	{name: "health"},
	{name: "appointments"},
	{name: "medication_logs"},
	{name: "medications"},
	{name: "medical_team"},
	{name: "emergency_contacts"},
	{name: "processed_reports", ownerKey: true},
	{name: "report_summaries", ownerKey: true},
	{name: "activity_logs"},
	{name: "care_circle_links"},
	{name: "notification_state"},
	{name: "remembered_devices"},
	{name: "profile_preferences"},
}

// ScopedTables returns the names of the record tables the cascade clears.
func ScopedTables() []string {
	out := make([]string, len(scopedTables))
	for i, t := range scopedTables {
		out[i] = t.name
	}
	return out
}

// DeleteForProfiles removes every record row whose profile_id is one of profileIDs.
func (s *Service) DeleteForProfiles(ctx context.Context, report *CascadeReport, profileIDs []uuid.UUID) error {
	return s.cascade(ctx, report, columnProfileID, uuidValues(profileIDs), false)
}

// DeleteForAccounts removes every record row whose user_id is one of accountIDs.
func (s *Service) DeleteForAccounts(ctx context.Context, report *CascadeReport, accountIDs []uuid.UUID) error {
	return s.cascade(ctx, report, columnUserID, uuidValues(accountIDs), false)
}

// DeleteForLegacyOwnerKeys removes report cache rows keyed by a free-text owner key.
func (s *Service) DeleteForLegacyOwnerKeys(ctx context.Context, report *CascadeReport, keys []string) error {
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = k
	}
	return s.cascade(ctx, report, columnOwnerKey, values, true)
}

func (s *Service) cascade(ctx context.Context, report *CascadeReport, column string, values []any, ownerKeyOnly bool) error {
	if len(values) == 0 {
		return nil
	}
	for _, t := range scopedTables {
		if ownerKeyOnly && !t.ownerKey {
			continue
		}
		if err := s.deletePass(ctx, report, t.name, column, values); err != nil {
			return err
		}
	}
	return nil
}

// deletePass runs one DELETE. A missing table or column means there is
// nothing to delete; any other error aborts and names the table.
func (s *Service) deletePass(ctx context.Context, report *CascadeReport, table, column string, values []any) error {
	n, err := s.rows.DeleteWhereIn(ctx, table, column, values)
	if err != nil {
		if domain.IsSchemaDrift(err) {
			s.driftSkipped(ctx, table, column, err)
			report.skip(table, column)
			return nil
		}
		return fmt.Errorf("cascade %s.%s: %w", table, column, err)
	}

	report.add(table, n)
	s.metrics.AddRowsDeleted(table, n)
	if n > 0 {
		s.log.DebugContext(ctx, "rows deleted",
			slog.String("table", table),
			slog.String("column", column),
			slog.Int64("rows", n),
		)
	}
	return nil
}

// deleteAccountProfiles removes the account's profile rows under both
// ownership columns.
func (s *Service) deleteAccountProfiles(ctx context.Context, report *CascadeReport, accountID uuid.UUID) error {
	for _, col := range domain.OwnerColumns() {
		n, err := s.profiles.DeleteByOwner(ctx, col, []uuid.UUID{accountID})
		if err != nil {
			if domain.IsSchemaDrift(err) {
				s.driftSkipped(ctx, profilesTable, col.String(), err)
				report.skip(profilesTable, col.String())
				continue
			}
			return fmt.Errorf("cascade %s.%s: %w", profilesTable, col, err)
		}
		report.add(profilesTable, n)
		s.metrics.AddRowsDeleted(profilesTable, n)
	}
	return nil
}

func uuidValues(ids []uuid.UUID) []any {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return values
}
