package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// HookKind identifies the handler a queued action is dispatched to.
type HookKind string

const (
	HookAPICall   HookKind = "api_call"
	HookSendEmail HookKind = "send_email"
	HookSendSMS   HookKind = "send_sms"
	HookWebhook   HookKind = "webhook"
	HookCRMSync   HookKind = "crm_sync"
	HookRetry     HookKind = "retry"
)

// Valid reports whether k is a known hook kind.
func (k HookKind) Valid() bool {
	switch k {
	case HookAPICall, HookSendEmail, HookSendSMS, HookWebhook, HookCRMSync, HookRetry:
		return true
	}
	return false
}

// HookArgs is the tagged union of per-hook argument structs. Arguments are
// decoded from their wire form exactly once, at the scheduler boundary.
type HookArgs interface {
	Kind() HookKind
}

// APICallArgs replays a provider API operation for a submission.
type APICallArgs struct {
	InstanceID   string                 `json:"instance_id"`
	SubmissionID string                 `json:"submission_id"`
	Operation    string                 `json:"operation"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
}

func (APICallArgs) Kind() HookKind { return HookAPICall }

// SendEmailArgs dispatches a templated notification email.
type SendEmailArgs struct {
	To         string            `json:"to"`
	TemplateID string            `json:"template_id"`
	Vars       map[string]string `json:"vars,omitempty"`
}

func (SendEmailArgs) Kind() HookKind { return HookSendEmail }

// SendSMSArgs dispatches a notification SMS.
type SendSMSArgs struct {
	To         string `json:"to"`
	Message    string `json:"message"`
	InstanceID string `json:"instance_id,omitempty"`
}

func (SendSMSArgs) Kind() HookKind { return HookSendSMS }

// WebhookArgs fans out a webhook event to subscribed endpoints.
type WebhookArgs struct {
	Event      string                 `json:"event"`
	InstanceID string                 `json:"instance_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

func (WebhookArgs) Kind() HookKind { return HookWebhook }

// CRMSyncArgs pushes a submission to the tenant's CRM integration.
type CRMSyncArgs struct {
	InstanceID   string `json:"instance_id"`
	SubmissionID string `json:"submission_id"`
	Provider     string `json:"provider,omitempty"`
}

func (CRMSyncArgs) Kind() HookKind { return HookCRMSync }

// RetryArgs runs one retry-worker batch.
type RetryArgs struct {
	Limit int `json:"limit,omitempty"`
}

func (RetryArgs) Kind() HookKind { return HookRetry }

// DecodeArgs unmarshals raw argument bytes into the typed struct for kind.
func DecodeArgs(kind HookKind, raw json.RawMessage) (HookArgs, error) {
	var (
		args HookArgs
		err  error
	)
	switch kind {
	case HookAPICall:
		var a APICallArgs
		err = json.Unmarshal(raw, &a)
		args = a
	case HookSendEmail:
		var a SendEmailArgs
		err = json.Unmarshal(raw, &a)
		args = a
	case HookSendSMS:
		var a SendSMSArgs
		err = json.Unmarshal(raw, &a)
		args = a
	case HookWebhook:
		var a WebhookArgs
		err = json.Unmarshal(raw, &a)
		args = a
	case HookCRMSync:
		var a CRMSyncArgs
		err = json.Unmarshal(raw, &a)
		args = a
	case HookRetry:
		var a RetryArgs
		err = json.Unmarshal(raw, &a)
		args = a
	default:
		return nil, fmt.Errorf("unknown hook kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s args: %w", kind, err)
	}
	return args, nil
}

// EncodeArgs marshals typed arguments back to their wire form.
func EncodeArgs(args HookArgs) (json.RawMessage, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encoding %s args: %w", args.Kind(), err)
	}
	return b, nil
}

// QueuedAction is a named unit of deferred work. It is ephemeral: only the
// durable backend persists it (as an ActionEnvelope) between enqueue and run.
type QueuedAction struct {
	ActionID    string
	Hook        HookKind
	Args        HookArgs
	ScheduledAt time.Time
	Group       string // logical namespace for bulk cancellation
}

// ActionEnvelope is the wire form a queued action takes inside the durable
// queue backend.
type ActionEnvelope struct {
	ActionID    string          `json:"action_id"`
	Hook        HookKind        `json:"hook"`
	Args        json.RawMessage `json:"args"`
	Group       string          `json:"group,omitempty"`
	ScheduledAt int64           `json:"scheduled_at"`
	EnqueuedAt  int64           `json:"enqueued_at"`
}
