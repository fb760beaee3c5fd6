package service

import (
	"strings"
	"time"
)

// WebhookPayload is the canonical outbound body. Incoming event data is
// classified into known buckets; anything unrecognized lands in Metadata so
// new event shapes never silently drop fields.
type WebhookPayload struct {
	Event      string                 `json:"event"`
	Timestamp  string                 `json:"timestamp"`
	Source     string                 `json:"source"`
	Instance   map[string]interface{} `json:"instance,omitempty"`
	Submission map[string]interface{} `json:"submission,omitempty"`
	Customer   map[string]interface{} `json:"customer,omitempty"`
	Schedule   map[string]interface{} `json:"schedule,omitempty"`
	Step       map[string]interface{} `json:"step,omitempty"`
	Visitor    map[string]interface{} `json:"visitor,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

var (
	instanceKeys = keySet("instance_id", "instance_name", "form_id", "form_name")
	submissionKeys = keySet("submission_id", "status", "submitted_at",
		"confirmation_number", "result", "retry_count", "last_error")
	customerKeys = keySet("customer_email", "email", "customer_name",
		"first_name", "last_name", "phone", "account_number", "service_address")
	scheduleKeys = keySet("appointment_date", "appointment_time", "slot_id",
		"timezone", "duration_minutes")
	stepKeys    = keySet("step_id", "step_name", "current_step", "total_steps")
	visitorKeys = keySet("visitor_id", "user_agent", "referrer", "ip_address",
		"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content")
)

func keySet(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// payloadTimestampFormat renders UTC offsets as +00:00 rather than Z, which
// is what endpoint integrations verify signatures against.
const payloadTimestampFormat = "2006-01-02T15:04:05-07:00"

// BuildPayload classifies raw event data into the canonical payload buckets,
// masking customer PII.
func BuildPayload(event, source string, raw map[string]interface{}, now time.Time) *WebhookPayload {
	p := &WebhookPayload{
		Event:     event,
		Timestamp: now.Format(payloadTimestampFormat),
		Source:    source,
	}

	for k, v := range raw {
		switch {
		case member(instanceKeys, k):
			p.Instance = put(p.Instance, k, v)
		case member(submissionKeys, k):
			p.Submission = put(p.Submission, k, v)
		case member(customerKeys, k):
			p.Customer = put(p.Customer, k, maskCustomerField(k, v))
		case member(scheduleKeys, k):
			p.Schedule = put(p.Schedule, k, v)
		case member(stepKeys, k):
			p.Step = put(p.Step, k, v)
		case member(visitorKeys, k):
			p.Visitor = put(p.Visitor, k, v)
		default:
			p.Metadata = put(p.Metadata, k, v)
		}
	}

	return p
}

func member(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}

func put(m map[string]interface{}, k string, v interface{}) map[string]interface{} {
	if m == nil {
		m = make(map[string]interface{})
	}
	m[k] = v
	return m
}

func maskCustomerField(key string, v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch key {
	case "email", "customer_email":
		return MaskEmail(s)
	case "account_number":
		return MaskAccount(s)
	}
	return v
}

// MaskEmail masks the local part to first char + stars + last char,
// preserving the domain: "john.doe@example.com" -> "j*******e@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return strings.Repeat("*", len([]rune(email)))
	}
	local := []rune(email[:at])
	domain := email[at:]
	if len(local) == 1 {
		return "*" + domain
	}
	return string(local[0]) + strings.Repeat("*", len(local)-1) + string(local[len(local)-1]) + domain
}

// MaskAccount masks all but the last 4 digits: "1234567890" -> "******7890".
func MaskAccount(account string) string {
	runes := []rune(account)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
