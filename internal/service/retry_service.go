package service

import (
	"context"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RetryService implements ports.RetryStore. It is the only writer of retry
// record state; the delivery engine and connectors feed it outcomes but
// never touch records directly.
type RetryService struct {
	repo       ports.RetryRepository
	activity   ports.ActivityLogRepository
	bus        ports.EventBus
	backoff    BackoffSchedule
	defaultMax int
	log        zerolog.Logger
	now        func() time.Time
}

// NewRetryService creates the retry store service.
func NewRetryService(
	repo ports.RetryRepository,
	activity ports.ActivityLogRepository,
	bus ports.EventBus,
	backoff BackoffSchedule,
	defaultMax int,
	log zerolog.Logger,
) *RetryService {
	if defaultMax <= 0 {
		defaultMax = domain.DefaultMaxRetries
	}
	if backoff.Base <= 0 {
		backoff = DefaultBackoff
	}
	return &RetryService{
		repo:       repo,
		activity:   activity,
		bus:        bus,
		backoff:    backoff,
		defaultMax: defaultMax,
		log:        log,
		now:        time.Now,
	}
}

// EnqueueRetry implements ports.RetryStore. The first automatic re-attempt
// is due one base backoff after the original failure.
func (s *RetryService) EnqueueRetry(ctx context.Context, submissionID, instanceID string, cause error, maxRetries int) (*domain.RetryRecord, error) {
	subID, err := uuid.Parse(submissionID)
	if err != nil {
		return nil, apperror.ErrInvalidSubmissionRef()
	}
	if maxRetries <= 0 {
		maxRetries = s.defaultMax
	}

	existing, err := s.repo.GetInFlightBySubmission(ctx, subID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return nil, apperror.ErrRetryInFlight()
	}

	now := s.now()
	next := now.Add(s.backoff.Delay(1))
	rec := &domain.RetryRecord{
		ID:           uuid.New(),
		SubmissionID: subID,
		InstanceID:   instanceID,
		RetryCount:   0,
		MaxRetries:   maxRetries,
		LastError:    errString(cause),
		NextRetryAt:  &next,
		Status:       domain.RetryStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("record_id", rec.ID.String()).
		Str("submission_id", submissionID).
		Str("instance_id", instanceID).
		Time("next_retry_at", next).
		Msg("retry enqueued")
	s.appendActivity(ctx, "info", "retry enqueued", rec)
	return rec, nil
}

// GetDue implements ports.RetryStore.
func (s *RetryService) GetDue(ctx context.Context, limit int) ([]domain.RetryRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	records, err := s.repo.ClaimDue(ctx, s.now(), limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return records, nil
}

// RecordOutcome implements ports.RetryStore. Outcomes on terminal records
// are no-ops: a second success on a completed record must not alter
// counters, and a failed record never transitions again.
func (s *RetryService) RecordOutcome(ctx context.Context, rec *domain.RetryRecord, success bool, cause error) error {
	if rec.Terminal() {
		if rec.Status == domain.RetryStatusFailed {
			s.log.Warn().Str("record_id", rec.ID.String()).Msg("outcome reported for terminal record, ignoring")
		}
		return nil
	}

	now := s.now()
	rec.UpdatedAt = now

	if success {
		rec.Status = domain.RetryStatusCompleted
		rec.NextRetryAt = nil
		if err := s.repo.Update(ctx, rec); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		s.log.Info().
			Str("record_id", rec.ID.String()).
			Int("retry_count", rec.RetryCount).
			Msg("retry completed")
		s.appendActivity(ctx, "info", "retry completed", rec)
		s.bus.Publish(ctx, TopicRetrySucceeded, s.eventPayload(rec))
		return nil
	}

	rec.LastError = errString(cause)

	newCount := rec.RetryCount + 1
	if newCount > rec.MaxRetries {
		// Exhausted. RetryCount stays at MaxRetries: the cap is an
		// invariant, not a counter that keeps climbing.
		rec.Status = domain.RetryStatusFailed
		rec.NextRetryAt = nil
		if err := s.repo.Update(ctx, rec); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		s.log.Error().
			Str("record_id", rec.ID.String()).
			Int("retry_count", rec.RetryCount).
			Str("last_error", rec.LastError).
			Msg("retries exhausted, record finalized")
		s.appendActivity(ctx, "error", "retries exhausted", rec)
		s.bus.Publish(ctx, TopicRetryExhausted, s.eventPayload(rec))
		return nil
	}

	rec.RetryCount = newCount
	rec.Status = domain.RetryStatusPending
	next := now.Add(s.backoff.Delay(newCount))
	rec.NextRetryAt = &next
	if err := s.repo.Update(ctx, rec); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	s.log.Warn().
		Str("record_id", rec.ID.String()).
		Int("retry_count", rec.RetryCount).
		Time("next_retry_at", next).
		Str("last_error", rec.LastError).
		Msg("retry rescheduled with backoff")
	s.appendActivity(ctx, "warning", "retry rescheduled", rec)
	s.bus.Publish(ctx, TopicRetryRescheduled, s.eventPayload(rec))
	return nil
}

// FinalizeFailure implements ports.RetryStore: permanent errors skip backoff
// entirely since re-attempting cannot fix misconfiguration.
func (s *RetryService) FinalizeFailure(ctx context.Context, rec *domain.RetryRecord, cause error) error {
	if rec.Terminal() {
		return nil
	}
	rec.Status = domain.RetryStatusFailed
	rec.LastError = errString(cause)
	rec.NextRetryAt = nil
	rec.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, rec); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	s.log.Error().
		Str("record_id", rec.ID.String()).
		Str("last_error", rec.LastError).
		Msg("retry finalized as permanent failure")
	s.appendActivity(ctx, "error", "retry finalized as permanent failure", rec)
	s.bus.Publish(ctx, TopicRetryExhausted, s.eventPayload(rec))
	return nil
}

// ReclaimStuck implements ports.RetryStore. A processing record older than
// age is an abandoned claim from a crashed or overlapping worker run.
func (s *RetryService) ReclaimStuck(ctx context.Context, age time.Duration) (int64, error) {
	n, err := s.repo.ReclaimStuck(ctx, s.now().Add(-age))
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if n > 0 {
		s.log.Warn().Int64("reclaimed", n).Msg("stuck processing records returned to pending")
	}
	return n, nil
}

func (s *RetryService) eventPayload(rec *domain.RetryRecord) map[string]interface{} {
	return map[string]interface{}{
		"record_id":     rec.ID.String(),
		"submission_id": rec.SubmissionID.String(),
		"instance_id":   rec.InstanceID,
		"retry_count":   rec.RetryCount,
		"max_retries":   rec.MaxRetries,
		"last_error":    rec.LastError,
	}
}

func (s *RetryService) appendActivity(ctx context.Context, level, message string, rec *domain.RetryRecord) {
	if s.activity == nil {
		return
	}
	err := s.activity.Append(ctx, level, message, map[string]interface{}{
		"record_id":     rec.ID.String(),
		"submission_id": rec.SubmissionID.String(),
		"instance_id":   rec.InstanceID,
		"retry_count":   rec.RetryCount,
		"status":        string(rec.Status),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("appending activity log")
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
