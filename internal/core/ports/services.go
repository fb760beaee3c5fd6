package ports

import (
	"context"
	"time"

	"enrollment-dispatch/internal/core/domain"
)

// HookHandler executes the work behind one hook kind. The returned map is the
// handler's result, stored in the short-lived result cache under the action id.
type HookHandler func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error)

// Scheduler dispatches named units of work to whichever execution backend
// was selected at startup.
type Scheduler interface {
	// Schedule enqueues args for hook after delay and returns a stable
	// action id for result correlation.
	Schedule(ctx context.Context, hook domain.HookKind, args domain.HookArgs, delay time.Duration) (string, error)
	// CancelGroup best-effort cancels not-yet-run actions of a group.
	CancelGroup(ctx context.Context, group string) error
	// Backend names the execution strategy selected at startup.
	Backend() string
}

// Executor is one execution backend strategy. The durable backend is probed
// once at startup; degraded strategies exist only as fallbacks.
type Executor interface {
	Name() string
	// Available probes whether the backend can accept work.
	Available(ctx context.Context) bool
	Enqueue(ctx context.Context, action domain.QueuedAction) error
	CancelGroup(ctx context.Context, group string) error
}

// QueueStore is the persistence behind the durable executor: a delayed queue
// keyed by run-at time with a per-group index for cancellation.
type QueueStore interface {
	Push(ctx context.Context, env domain.ActionEnvelope) error
	// PopDue removes and returns up to limit envelopes due at now.
	PopDue(ctx context.Context, now time.Time, limit int) ([]domain.ActionEnvelope, error)
	// CancelGroup drops not-yet-popped envelopes of the group, returning
	// how many were removed.
	CancelGroup(ctx context.Context, group string) (int64, error)
	Ping(ctx context.Context) error
}

// ResultCache holds handler results keyed by action id for a short TTL.
// Nothing blocks on it; it exists for caller-side correlation only.
type ResultCache interface {
	Set(ctx context.Context, actionID string, result []byte, ttl time.Duration) error
	// Get returns nil, nil when the result is absent or expired.
	Get(ctx context.Context, actionID string) ([]byte, error)
}

// RetryStore owns retry record state transitions.
type RetryStore interface {
	// EnqueueRetry inserts a new pending record. An in-flight record for
	// the same submission is a caller error (RTY_002).
	EnqueueRetry(ctx context.Context, submissionID, instanceID string, cause error, maxRetries int) (*domain.RetryRecord, error)
	// GetDue claims due pending records, transitioning them to processing.
	GetDue(ctx context.Context, limit int) ([]domain.RetryRecord, error)
	// RecordOutcome applies a success or failure outcome to a claimed
	// record: completed, pending with backoff, or terminal failed.
	RecordOutcome(ctx context.Context, rec *domain.RetryRecord, success bool, cause error) error
	// FinalizeFailure moves a record straight to terminal failed, used for
	// permanent errors that backoff cannot fix.
	FinalizeFailure(ctx context.Context, rec *domain.RetryRecord, cause error) error
	// ReclaimStuck returns processing records older than age to pending.
	ReclaimStuck(ctx context.Context, age time.Duration) (int64, error)
}

// CredentialsProvider resolves the decrypted provider API credentials for a
// tenant instance before replay calls.
type CredentialsProvider interface {
	Get(ctx context.Context, instanceID string) (string, error)
}

// ProcessSummary aggregates one worker batch for observability.
type ProcessSummary struct {
	Reclaimed         int64 `json:"reclaimed"`
	Processed         int   `json:"processed"`
	Succeeded         int   `json:"succeeded"`
	Retried           int   `json:"retried"`
	PermanentlyFailed int   `json:"permanently_failed"`
}

// RetryProcessor is the periodically invoked worker that replays due retry
// records.
type RetryProcessor interface {
	Process(ctx context.Context, limit int) (ProcessSummary, error)
}

// WebhookDispatcher fans out domain events to subscribed endpoints and
// performs single delivery attempts. Retry on failure is the retry worker's
// responsibility, never the dispatcher's.
type WebhookDispatcher interface {
	Trigger(ctx context.Context, event string, data map[string]interface{}, instanceID string) error
	Deliver(ctx context.Context, endpoint *domain.WebhookEndpoint, event string, data map[string]interface{}) domain.DeliveryResult
}

// ConnectorResult is a provider API response convertible to a plain map for
// transport and logging.
type ConnectorResult struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// ToMap flattens the result for webhook payloads and logs.
func (r ConnectorResult) ToMap() map[string]interface{} {
	m := map[string]interface{}{"success": r.Success}
	if r.Code != "" {
		m["code"] = r.Code
	}
	for k, v := range r.Data {
		m[k] = v
	}
	return m
}

// Connector is the provider API replay target.
type Connector interface {
	ValidateAccount(ctx context.Context, credentials string, account map[string]interface{}) (ConnectorResult, error)
	SubmitEnrollment(ctx context.Context, credentials string, form map[string]interface{}) (ConnectorResult, error)
	GetScheduleSlots(ctx context.Context, credentials string, query map[string]interface{}) (ConnectorResult, error)
	BookAppointment(ctx context.Context, credentials string, form map[string]interface{}) (ConnectorResult, error)
}

// SecretsService decrypts stored connector credentials before replay calls.
type SecretsService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService signs webhook bodies with HMAC-SHA256 over the exact
// bytes transmitted.
type SignatureService interface {
	Sign(secretKey string, body []byte) string
	Verify(secretKey string, body []byte, signature string) bool
}

// EventHandler receives published bus events.
type EventHandler func(ctx context.Context, event string, payload map[string]interface{})

// EventBus is the typed publish/subscribe seam between the retry state
// machine and cross-cutting consumers such as webhook fan-out.
type EventBus interface {
	Publish(ctx context.Context, event string, payload map[string]interface{})
	Subscribe(event string, h EventHandler)
}
