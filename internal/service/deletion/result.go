package deletion

import (
	"sort"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

// AccountResult describes a completed account deletion.
type AccountResult struct {
	Mode              domain.DeletionMode
	ProfilesDeleted   int
	VaultFilesRemoved int
	FamiliesReaped    []uuid.UUID
	Cascade           *CascadeReport
}

// ProfileResult describes a completed profile deletion.
type ProfileResult struct {
	RemovedVaultFiles int
	Cascade           *CascadeReport
}

// DriftSkip is a delete pass that found no table or no column to delete from.
type DriftSkip struct {
	Table  string
	Column string
}

// CascadeReport collects rows deleted per table and the passes skipped for
// schema drift.
type CascadeReport struct {
	Deleted map[string]int64
	Skipped []DriftSkip
}

func newCascadeReport() *CascadeReport {
	return &CascadeReport{Deleted: make(map[string]int64)}
}

func (r *CascadeReport) add(table string, n int64) {
	r.Deleted[table] += n
}

func (r *CascadeReport) skip(table, column string) {
	r.Skipped = append(r.Skipped, DriftSkip{Table: table, Column: column})
}

// Total returns the number of rows deleted across all tables.
func (r *CascadeReport) Total() int64 {
	var n int64
	for _, v := range r.Deleted {
		n += v
	}
	return n
}

// Tables returns the tables rows were deleted from, sorted.
func (r *CascadeReport) Tables() []string {
	out := make([]string, 0, len(r.Deleted))
	for t, n := range r.Deleted {
		if n > 0 {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
