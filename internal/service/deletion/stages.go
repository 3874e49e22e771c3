package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/medvault/medvault-backend/internal/domain"
)

// StageError reports the stage a deletion failed in.
type StageError struct {
	Flow  domain.DeletionFlow
	Stage domain.DeletionStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("deletion.%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage returns the stage err was raised in, if it came from a deletion.
func FailedStage(err error) (domain.DeletionStage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

// run tracks one deletion through its stages.
type run struct {
	s     *Service
	flow  domain.DeletionFlow
	log   *slog.Logger
	stage domain.DeletionStage
	begin time.Time
}

func (s *Service) newRun(ctx context.Context, flow domain.DeletionFlow, attrs ...any) *run {
	r := &run{
		s:     s,
		flow:  flow,
		log:   s.log.With(append([]any{slog.String("flow", flow.String())}, attrs...)...),
		stage: domain.StageStart,
		begin: time.Now(),
	}
	r.log.InfoContext(ctx, "deletion started", slog.String("stage", domain.StageStart.String()))
	return r
}

// step moves the run into stage and executes fn, timing it.
func (r *run) step(ctx context.Context, stage domain.DeletionStage, fn func(ctx context.Context) error) error {
	r.stage = stage
	r.log.InfoContext(ctx, "deletion stage", slog.String("stage", stage.String()))

	start := time.Now()
	err := fn(ctx)
	r.s.metrics.ObserveStage(r.flow.String(), stage.String(), time.Since(start))

	if err != nil {
		return &StageError{Flow: r.flow, Stage: stage, Err: err}
	}
	return nil
}

// finish logs the terminal state and records the outcome.
func (r *run) finish(ctx context.Context, err error) {
	if err == nil {
		r.stage = domain.StageDone
		r.log.InfoContext(ctx, "deletion finished",
			slog.String("stage", domain.StageDone.String()),
			slog.Duration("elapsed", time.Since(r.begin)),
		)
		r.s.metrics.RecordRun(r.flow.String(), "done")
		return
	}

	failedAt := r.stage
	r.stage = domain.StageFailed

	attrs := []any{
		slog.String("stage", domain.StageFailed.String()),
		slog.String("failed_stage", failedAt.String()),
		slog.String("error", err.Error()),
	}
	var residue *domain.ResidueError
	if errors.As(err, &residue) {
		r.s.metrics.RecordResidue(r.flow.String())
		attrs = append(attrs,
			slog.Int("remaining_files", residue.Remaining()),
			slog.Any("sample", residue.Sample()),
			slog.Int("remaining_profiles", len(residue.ProfileIDs)),
		)
	}
	r.log.ErrorContext(ctx, "deletion failed", attrs...)
	r.s.metrics.RecordRun(r.flow.String(), "failed")
}

// lock takes the in-flight guard for key and returns its release.
func (s *Service) lock(ctx context.Context, key string) (func(), error) {
	release, err := s.guard.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log.WarnContext(ctx, "release deletion lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}, nil
}
