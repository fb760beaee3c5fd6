// Package connector implements the provider API client used to replay
// failed enrollment and scheduling operations.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"enrollment-dispatch/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPConnector implements ports.Connector against the provider's REST API.
// Credentials are resolved per call: each tenant instance carries its own
// API key.
type HTTPConnector struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewHTTPConnector creates the provider API client. httpClient must carry
// the connector timeout.
func NewHTTPConnector(baseURL string, httpClient HTTPClient, log zerolog.Logger) *HTTPConnector {
	return &HTTPConnector{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// ValidateAccount checks a customer account against the provider.
func (c *HTTPConnector) ValidateAccount(ctx context.Context, credentials string, account map[string]interface{}) (ports.ConnectorResult, error) {
	return c.post(ctx, credentials, "/v1/accounts/validate", account)
}

// SubmitEnrollment submits an enrollment form to the provider.
func (c *HTTPConnector) SubmitEnrollment(ctx context.Context, credentials string, form map[string]interface{}) (ports.ConnectorResult, error) {
	return c.post(ctx, credentials, "/v1/enrollments", form)
}

// GetScheduleSlots fetches available appointment slots.
func (c *HTTPConnector) GetScheduleSlots(ctx context.Context, credentials string, query map[string]interface{}) (ports.ConnectorResult, error) {
	return c.post(ctx, credentials, "/v1/schedule/slots", query)
}

// BookAppointment books an appointment slot with the provider.
func (c *HTTPConnector) BookAppointment(ctx context.Context, credentials string, form map[string]interface{}) (ports.ConnectorResult, error) {
	return c.post(ctx, credentials, "/v1/appointments", form)
}

// providerResponse is the provider API's response envelope.
type providerResponse struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code"`
	Data    map[string]interface{} `json:"data"`
}

func (c *HTTPConnector) post(ctx context.Context, credentials, path string, payload map[string]interface{}) (ports.ConnectorResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.ConnectorResult{}, fmt.Errorf("encode connector payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return ports.ConnectorResult{}, fmt.Errorf("build connector request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credentials)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ConnectorResult{}, fmt.Errorf("connector call %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ports.ConnectorResult{}, fmt.Errorf("read connector response: %w", err)
	}

	var pr providerResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &pr); err != nil {
			return ports.ConnectorResult{}, fmt.Errorf("decode connector response (status %d): %w", resp.StatusCode, err)
		}
	}

	// The provider signals business rejections in the envelope, not the
	// HTTP status. Treat a non-2xx status without an envelope as a
	// transient failure the retry worker should back off on.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if pr.Code == "" {
			return ports.ConnectorResult{}, fmt.Errorf("connector call %s: status %d", path, resp.StatusCode)
		}
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Str("code", pr.Code).Msg("provider rejected call")
	}

	return ports.ConnectorResult{
		Success: pr.Success,
		Code:    pr.Code,
		Data:    pr.Data,
	}, nil
}
