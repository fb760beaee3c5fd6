package domain

import (
	"time"

	"github.com/google/uuid"
)

// RetryStatus is the state of a retry record.
// Transitions: pending -> processing -> {completed | pending (with backoff) | failed}.
// failed is terminal.
type RetryStatus string

const (
	RetryStatusPending    RetryStatus = "pending"
	RetryStatusProcessing RetryStatus = "processing"
	RetryStatusCompleted  RetryStatus = "completed"
	RetryStatusFailed     RetryStatus = "failed"
)

// RetryRecord is one durable row tracking a failed operation pending
// automatic re-attempt. Invariant: RetryCount <= MaxRetries at all times.
type RetryRecord struct {
	ID           uuid.UUID   `json:"id"`
	SubmissionID uuid.UUID   `json:"submission_id"`
	InstanceID   string      `json:"instance_id"`
	RetryCount   int         `json:"retry_count"`
	MaxRetries   int         `json:"max_retries"`
	LastError    string      `json:"last_error"`
	NextRetryAt  *time.Time  `json:"next_retry_at"`
	Status       RetryStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Terminal reports whether the record can transition no further.
func (r *RetryRecord) Terminal() bool {
	return r.Status == RetryStatusCompleted || r.Status == RetryStatusFailed
}

// InFlight reports whether the record still has retries pending or running.
func (r *RetryRecord) InFlight() bool {
	return r.Status == RetryStatusPending || r.Status == RetryStatusProcessing
}

// DefaultMaxRetries applies when the caller does not specify a cap.
const DefaultMaxRetries = 3
