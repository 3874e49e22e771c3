// Package metrics holds the Prometheus collectors of the deletion pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Deletion holds all Prometheus metrics for the deletion pipeline.
// A nil *Deletion is valid and records nothing.
type Deletion struct {
	RunsTotal         *prometheus.CounterVec   // medvault_deletion_runs_total{flow,outcome}
	StageDuration     *prometheus.HistogramVec // medvault_deletion_stage_duration_seconds{flow,stage}
	VaultFilesRemoved *prometheus.CounterVec   // medvault_deletion_vault_files_removed_total{flow}
	RowsDeleted       *prometheus.CounterVec   // medvault_deletion_rows_deleted_total{table}
	DriftSkips        *prometheus.CounterVec   // medvault_deletion_drift_skips_total{table,column}
	ResidueDetected   *prometheus.CounterVec   // medvault_deletion_residue_total{flow}
	FamiliesReaped    prometheus.Counter       // medvault_deletion_families_reaped_total
	IdentityFallbacks prometheus.Counter       // medvault_deletion_identity_soft_fallbacks_total
}

// NewDeletion registers the deletion metrics on registry (the default
// registerer when nil).
func NewDeletion(registry prometheus.Registerer) *Deletion {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	f := promauto.With(registry)

	return &Deletion{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "medvault_deletion_runs_total",
			Help: "Deletion runs by flow and outcome",
		}, []string{"flow", "outcome"}),

		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "medvault_deletion_stage_duration_seconds",
			Help:    "Time spent in each deletion stage",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"flow", "stage"}),

		VaultFilesRemoved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "medvault_deletion_vault_files_removed_total",
			Help: "Vault objects removed by deletions",
		}, []string{"flow"}),

		RowsDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "medvault_deletion_rows_deleted_total",
			Help: "Rows deleted by the table cascade",
		}, []string{"table"}),

		DriftSkips: f.NewCounterVec(prometheus.CounterOpts{
			Name: "medvault_deletion_drift_skips_total",
			Help: "Delete passes skipped because the table or column does not exist",
		}, []string{"table", "column"}),

		ResidueDetected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "medvault_deletion_residue_total",
			Help: "Verifications that found data left behind",
		}, []string{"flow"}),

		FamiliesReaped: f.NewCounter(prometheus.CounterOpts{
			Name: "medvault_deletion_families_reaped_total",
			Help: "Orphan family groups removed",
		}),

		IdentityFallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: "medvault_deletion_identity_soft_fallbacks_total",
			Help: "Account deletions that fell back to a soft identity delete",
		}),
	}
}

// ObserveStage records how long a stage took.
func (m *Deletion) ObserveStage(flow, stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(flow, stage).Observe(d.Seconds())
}

// RecordRun counts a finished run; outcome is "done" or "failed".
func (m *Deletion) RecordRun(flow, outcome string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(flow, outcome).Inc()
}

// AddFilesRemoved counts removed vault objects.
func (m *Deletion) AddFilesRemoved(flow string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.VaultFilesRemoved.WithLabelValues(flow).Add(float64(n))
}

// AddRowsDeleted counts rows removed from table.
func (m *Deletion) AddRowsDeleted(table string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RowsDeleted.WithLabelValues(table).Add(float64(n))
}

// RecordDriftSkip counts a delete pass skipped because of schema drift.
func (m *Deletion) RecordDriftSkip(table, column string) {
	if m == nil {
		return
	}
	m.DriftSkips.WithLabelValues(table, column).Inc()
}

// RecordResidue counts a failed verification.
func (m *Deletion) RecordResidue(flow string) {
	if m == nil {
		return
	}
	m.ResidueDetected.WithLabelValues(flow).Inc()
}

// AddFamiliesReaped counts reaped families.
func (m *Deletion) AddFamiliesReaped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.FamiliesReaped.Add(float64(n))
}

// RecordIdentityFallback counts a hard delete that fell back to soft.
func (m *Deletion) RecordIdentityFallback() {
	if m == nil {
		return
	}
	m.IdentityFallbacks.Inc()
}
