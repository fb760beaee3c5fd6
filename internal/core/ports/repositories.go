package ports

import (
	"context"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// RetryRepository persists retry records. The retry store and worker are the
// only writers; referential integrity of submission/instance refs is the
// caller's responsibility.
type RetryRepository interface {
	Insert(ctx context.Context, rec *domain.RetryRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RetryRecord, error)
	// GetInFlightBySubmission returns the pending/processing record for a
	// submission, or nil when none exists.
	GetInFlightBySubmission(ctx context.Context, submissionID uuid.UUID) (*domain.RetryRecord, error)
	// ClaimDue atomically flips up to limit due pending records to
	// processing and returns them, ordered by next_retry_at ascending.
	// Each record is returned to at most one caller.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.RetryRecord, error)
	Update(ctx context.Context, rec *domain.RetryRecord) error
	// ReclaimStuck returns processing records claimed before cutoff to
	// pending, and reports how many were reclaimed.
	ReclaimStuck(ctx context.Context, cutoff time.Time) (int64, error)
}

// SubmissionRepository reads submissions for replay and updates their status.
type SubmissionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus) error
}

// WebhookEndpointRepository resolves endpoints for delivery. Endpoint
// configuration is owned by the admin surface; only the delivery counters
// are mutated here.
type WebhookEndpointRepository interface {
	// GetForEvent returns active endpoints of the instance subscribed to
	// the event.
	GetForEvent(ctx context.Context, event string, instanceID string) ([]domain.WebhookEndpoint, error)
	// RecordDeliveryOutcome bumps success/failure counters and
	// last_triggered_at.
	RecordDeliveryOutcome(ctx context.Context, endpointID uuid.UUID, success bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEndpoint, error)
}

// DeliveryLogRepository appends per-attempt webhook delivery logs.
type DeliveryLogRepository interface {
	Append(ctx context.Context, log *domain.WebhookDeliveryLog) error
}

// ActivityLogRepository appends structured entries to the admin-facing
// activity log.
type ActivityLogRepository interface {
	Append(ctx context.Context, level string, message string, logCtx map[string]interface{}) error
}
