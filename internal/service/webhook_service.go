package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outbound webhook headers.
const (
	HeaderEvent     = "X-Event"
	HeaderTimestamp = "X-Timestamp"
	HeaderSource    = "X-Source"
	HeaderSignature = "X-Signature"
)

// maxLoggedBody caps how much of an endpoint's response is kept for logs.
const maxLoggedBody = 512

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookService implements ports.WebhookDispatcher. A delivery is a single
// POST: no retry happens here — failed deliveries surface to the retry
// worker through the returned result.
type WebhookService struct {
	endpoints    ports.WebhookEndpointRepository
	deliveryLogs ports.DeliveryLogRepository
	secrets      ports.SecretsService
	sigSvc       ports.SignatureService
	httpClient   HTTPClient
	sourceID     string
	log          zerolog.Logger
	now          func() time.Time
}

// NewWebhookService creates the delivery engine. httpClient must carry the
// delivery timeout and default (verifying) TLS configuration.
func NewWebhookService(
	endpoints ports.WebhookEndpointRepository,
	deliveryLogs ports.DeliveryLogRepository,
	secrets ports.SecretsService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	sourceID string,
	log zerolog.Logger,
) *WebhookService {
	return &WebhookService{
		endpoints:    endpoints,
		deliveryLogs: deliveryLogs,
		secrets:      secrets,
		sigSvc:       sigSvc,
		httpClient:   httpClient,
		sourceID:     sourceID,
		log:          log,
		now:          time.Now,
	}
}

// Trigger implements ports.WebhookDispatcher: fan out one event to every
// active endpoint of the instance subscribed to it.
func (s *WebhookService) Trigger(ctx context.Context, event string, data map[string]interface{}, instanceID string) error {
	endpoints, err := s.endpoints.GetForEvent(ctx, event, instanceID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if len(endpoints) == 0 {
		s.log.Debug().Str("event", event).Str("instance_id", instanceID).Msg("no endpoints subscribed")
		return nil
	}

	for i := range endpoints {
		ep := &endpoints[i]
		res := s.Deliver(ctx, ep, event, data)
		if res.Success {
			s.log.Info().
				Str("event", event).
				Str("endpoint_id", ep.ID.String()).
				Int("status", *res.StatusCode).
				Msg("webhook delivered")
			continue
		}
		evt := s.log.Warn().Str("event", event).Str("endpoint_id", ep.ID.String())
		if res.StatusCode != nil {
			evt = evt.Int("status", *res.StatusCode)
		}
		if res.Err != nil {
			evt = evt.Err(res.Err)
		}
		evt.Msg("webhook delivery failed")
	}
	return nil
}

// Deliver implements ports.WebhookDispatcher: canonicalize, sign, POST once,
// and record the outcome against the endpoint regardless of result.
func (s *WebhookService) Deliver(ctx context.Context, endpoint *domain.WebhookEndpoint, event string, data map[string]interface{}) domain.DeliveryResult {
	now := s.now()
	payload := BuildPayload(event, s.sourceID, data, now)

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DeliveryResult{Success: false, Err: apperror.ErrPayloadEncoding(err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return domain.DeliveryResult{Success: false, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEvent, event)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(now.Unix(), 10))
	req.Header.Set(HeaderSource, s.sourceID)

	// The signature covers the exact bytes on the wire: body is marshaled
	// once, signed, and sent without re-serialization.
	if sig := s.signature(endpoint, body); sig != "" {
		req.Header.Set(HeaderSignature, sig)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: DNS, connection refused, timeout.
		result := domain.DeliveryResult{Success: false, Err: err}
		s.record(ctx, endpoint, event, string(body), result)
		return result
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	status := resp.StatusCode
	result := domain.DeliveryResult{
		Success:    status >= 200 && status < 300,
		StatusCode: &status,
		Body:       string(respBody),
	}
	s.record(ctx, endpoint, event, string(body), result)
	return result
}

// signature returns the hex HMAC for the body, or "" for unsigned delivery.
// An endpoint without a secret, or one whose secret cannot be decrypted,
// delivers unsigned rather than not at all.
func (s *WebhookService) signature(endpoint *domain.WebhookEndpoint, body []byte) string {
	if !endpoint.HasSecret() {
		s.log.Warn().
			Str("endpoint_id", endpoint.ID.String()).
			Msg("endpoint has no secret, delivering unsigned")
		return ""
	}

	secret, err := s.secrets.Decrypt(*endpoint.Secret)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("endpoint_id", endpoint.ID.String()).
			Msg("endpoint secret undecryptable, delivering unsigned")
		return ""
	}
	return s.sigSvc.Sign(secret, body)
}

// record updates the endpoint counters and appends a delivery log row.
// Bookkeeping failures are logged, never propagated into the result.
func (s *WebhookService) record(ctx context.Context, endpoint *domain.WebhookEndpoint, event, payload string, result domain.DeliveryResult) {
	if err := s.endpoints.RecordDeliveryOutcome(ctx, endpoint.ID, result.Success); err != nil {
		s.log.Error().Err(err).Str("endpoint_id", endpoint.ID.String()).Msg("recording delivery outcome")
	}

	entry := &domain.WebhookDeliveryLog{
		ID:         uuid.New(),
		EndpointID: endpoint.ID,
		Event:      event,
		Payload:    payload,
		HTTPStatus: result.StatusCode,
		Success:    result.Success,
		CreatedAt:  s.now(),
	}
	if result.Err != nil {
		msg := result.Err.Error()
		entry.Error = &msg
	}
	if err := s.deliveryLogs.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("endpoint_id", endpoint.ID.String()).Msg("appending delivery log")
	}
}
