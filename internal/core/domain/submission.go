package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the lifecycle state of a form submission.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusRetrying  SubmissionStatus = "retrying"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// schedulingFields are the form-data keys that mark a submission as an
// appointment booking rather than a plain enrollment.
var schedulingFields = []string{"appointment_date", "appointment_time", "slot_id"}

// Submission is an enrollment or appointment form submission owned by the
// host platform. This subsystem reads it during replay and updates only its
// status.
type Submission struct {
	ID         uuid.UUID              `json:"id"`
	InstanceID string                 `json:"instance_id"`
	Status     SubmissionStatus       `json:"status"`
	FormData   map[string]interface{} `json:"form_data"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// IsAppointment reports whether the stored form data carries scheduling
// fields, which routes replay to book_appointment instead of
// submit_enrollment.
func (s *Submission) IsAppointment() bool {
	for _, f := range schedulingFields {
		if v, ok := s.FormData[f]; ok && v != nil && v != "" {
			return true
		}
	}
	return false
}

// CompletedEvent returns the webhook event fired when replay succeeds.
func (s *Submission) CompletedEvent() string {
	if s.IsAppointment() {
		return EventAppointmentBooked
	}
	return EventEnrollmentCompleted
}

// FailedEvent returns the webhook event fired when retries are exhausted.
func (s *Submission) FailedEvent() string {
	if s.IsAppointment() {
		return EventAppointmentFailed
	}
	return EventEnrollmentFailed
}
