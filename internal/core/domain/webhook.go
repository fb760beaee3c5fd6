package domain

import (
	"time"

	"github.com/google/uuid"
)

// Webhook event names emitted by this subsystem.
const (
	EventEnrollmentCompleted = "enrollment.completed"
	EventEnrollmentFailed    = "enrollment.failed"
	EventAppointmentBooked   = "appointment.booked"
	EventAppointmentFailed   = "appointment.failed"
)

// WebhookEndpoint is a tenant-configured outbound callback target. Created
// and edited by the admin surface; this subsystem reads it and mutates only
// the delivery counters.
type WebhookEndpoint struct {
	ID              uuid.UUID  `json:"id"`
	InstanceID      string     `json:"instance_id"`
	URL             string     `json:"url"`
	Secret          *string    `json:"-"` // nil or empty = deliver unsigned
	Events          []string   `json:"events"`
	IsActive        bool       `json:"is_active"`
	SuccessCount    int64      `json:"success_count"`
	FailureCount    int64      `json:"failure_count"`
	LastTriggeredAt *time.Time `json:"last_triggered_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SubscribedTo reports whether the endpoint wants the given event.
// A "*" subscription matches every event.
func (e *WebhookEndpoint) SubscribedTo(event string) bool {
	for _, ev := range e.Events {
		if ev == event || ev == "*" {
			return true
		}
	}
	return false
}

// HasSecret reports whether deliveries to this endpoint should be signed.
func (e *WebhookEndpoint) HasSecret() bool {
	return e.Secret != nil && *e.Secret != ""
}

// DeliveryResult is the structured outcome of a single delivery attempt.
// StatusCode is set for any completed HTTP exchange; Err only for
// transport-level failures (DNS, connection refused, timeout).
type DeliveryResult struct {
	Success    bool
	StatusCode *int
	Body       string // truncated response body, for logging
	Err        error
}

// WebhookDeliveryLog records one delivery attempt for the admin surface.
type WebhookDeliveryLog struct {
	ID         uuid.UUID `json:"id"`
	EndpointID uuid.UUID `json:"endpoint_id"`
	Event      string    `json:"event"`
	Payload    string    `json:"payload"` // JSON body as sent
	HTTPStatus *int      `json:"http_status"`
	Success    bool      `json:"success"`
	Error      *string   `json:"error"`
	CreatedAt  time.Time `json:"created_at"`
}
