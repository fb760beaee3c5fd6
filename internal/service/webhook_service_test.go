package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

type webhookFixture struct {
	endpoints    *mocks.MockWebhookEndpointRepository
	deliveryLogs *mocks.MockDeliveryLogRepository
	secrets      *mocks.MockSecretsService
	client       *mockHTTPClient
	svc          *WebhookService
}

func newWebhookFixture(t *testing.T, client *mockHTTPClient) *webhookFixture {
	ctrl := gomock.NewController(t)
	f := &webhookFixture{
		endpoints:    mocks.NewMockWebhookEndpointRepository(ctrl),
		deliveryLogs: mocks.NewMockDeliveryLogRepository(ctrl),
		secrets:      mocks.NewMockSecretsService(ctrl),
		client:       client,
	}
	f.svc = NewWebhookService(
		f.endpoints, f.deliveryLogs, f.secrets,
		NewHMACSignatureService(), client, "enrollment-dispatch",
		zerolog.New(io.Discard),
	)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func signedEndpoint() *domain.WebhookEndpoint {
	enc := "encrypted-secret"
	return &domain.WebhookEndpoint{
		ID:         uuid.New(),
		InstanceID: "inst-1",
		URL:        "https://hooks.example.com/enroll",
		Secret:     &enc,
		Events:     []string{"*"},
		IsActive:   true,
	}
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(`{"received":true}`)),
	}
}

func TestWebhookService_Deliver_SignedSuccess(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			captured = req
			capturedBody, _ = io.ReadAll(req.Body)
			return okResponse(), nil
		},
	}
	f := newWebhookFixture(t, client)
	ep := signedEndpoint()

	f.secrets.EXPECT().Decrypt("encrypted-secret").Return("s3cr3t", nil)
	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), ep.ID, true).Return(nil)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.WebhookDeliveryLog) error {
			assert.Equal(t, ep.ID, entry.EndpointID)
			assert.Equal(t, domain.EventEnrollmentCompleted, entry.Event)
			assert.True(t, entry.Success)
			require.NotNil(t, entry.HTTPStatus)
			assert.Equal(t, 200, *entry.HTTPStatus)
			return nil
		})

	result := f.svc.Deliver(context.Background(), ep, domain.EventEnrollmentCompleted, map[string]interface{}{
		"submission_id": "sub-1",
		"email":         "john.doe@example.com",
	})

	require.True(t, result.Success)
	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 200, *result.StatusCode)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, domain.EventEnrollmentCompleted, captured.Header.Get(HeaderEvent))
	assert.Equal(t, "enrollment-dispatch", captured.Header.Get(HeaderSource))
	assert.NotEmpty(t, captured.Header.Get(HeaderTimestamp))

	// The signature must verify against the exact bytes on the wire.
	sig := captured.Header.Get(HeaderSignature)
	require.NotEmpty(t, sig)
	assert.True(t, NewHMACSignatureService().Verify("s3cr3t", capturedBody, sig))

	// PII is masked before the body leaves the process.
	assert.Contains(t, string(capturedBody), "j*******e@example.com")
	assert.NotContains(t, string(capturedBody), "john.doe@example.com")
}

func TestWebhookService_Deliver_NoSecretDeliversUnsigned(t *testing.T) {
	var captured *http.Request
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			captured = req
			return okResponse(), nil
		},
	}
	f := newWebhookFixture(t, client)
	ep := signedEndpoint()
	ep.Secret = nil

	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), ep.ID, true).Return(nil)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	result := f.svc.Deliver(context.Background(), ep, domain.EventEnrollmentCompleted, nil)
	require.True(t, result.Success)
	assert.Empty(t, captured.Header.Get(HeaderSignature))
}

func TestWebhookService_Deliver_UndecryptableSecretDeliversUnsigned(t *testing.T) {
	var captured *http.Request
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			captured = req
			return okResponse(), nil
		},
	}
	f := newWebhookFixture(t, client)
	ep := signedEndpoint()

	f.secrets.EXPECT().Decrypt("encrypted-secret").Return("", errors.New("cipher: message authentication failed"))
	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), ep.ID, true).Return(nil)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	result := f.svc.Deliver(context.Background(), ep, domain.EventEnrollmentCompleted, nil)
	require.True(t, result.Success)
	assert.Empty(t, captured.Header.Get(HeaderSignature))
}

func TestWebhookService_Deliver_Non2xxIsFailure(t *testing.T) {
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: 500,
				Body:       io.NopCloser(strings.NewReader("internal error")),
			}, nil
		},
	}
	f := newWebhookFixture(t, client)
	ep := signedEndpoint()
	ep.Secret = nil

	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), ep.ID, false).Return(nil)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.WebhookDeliveryLog) error {
			assert.False(t, entry.Success)
			require.NotNil(t, entry.HTTPStatus)
			assert.Equal(t, 500, *entry.HTTPStatus)
			return nil
		})

	result := f.svc.Deliver(context.Background(), ep, domain.EventEnrollmentFailed, nil)
	assert.False(t, result.Success)
	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 500, *result.StatusCode)
	assert.Equal(t, "internal error", result.Body)
}

func TestWebhookService_Deliver_TransportError(t *testing.T) {
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	f := newWebhookFixture(t, client)
	ep := signedEndpoint()
	ep.Secret = nil

	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), ep.ID, false).Return(nil)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.WebhookDeliveryLog) error {
			assert.False(t, entry.Success)
			assert.Nil(t, entry.HTTPStatus)
			require.NotNil(t, entry.Error)
			return nil
		})

	result := f.svc.Deliver(context.Background(), ep, domain.EventEnrollmentFailed, nil)
	assert.False(t, result.Success)
	assert.Nil(t, result.StatusCode)
	require.Error(t, result.Err)
}

func TestWebhookService_Trigger_FansOutToAllSubscribers(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			calls++
			return okResponse(), nil
		},
	}
	f := newWebhookFixture(t, client)

	ep1 := *signedEndpoint()
	ep1.Secret = nil
	ep2 := *signedEndpoint()
	ep2.Secret = nil

	f.endpoints.EXPECT().GetForEvent(gomock.Any(), domain.EventAppointmentBooked, "inst-1").
		Return([]domain.WebhookEndpoint{ep1, ep2}, nil)
	f.endpoints.EXPECT().RecordDeliveryOutcome(gomock.Any(), gomock.Any(), true).Return(nil).Times(2)
	f.deliveryLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := f.svc.Trigger(context.Background(), domain.EventAppointmentBooked, map[string]interface{}{"slot_id": "am-1"}, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWebhookService_Trigger_NoSubscribers(t *testing.T) {
	client := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("no delivery expected")
			return nil, nil
		},
	}
	f := newWebhookFixture(t, client)

	f.endpoints.EXPECT().GetForEvent(gomock.Any(), domain.EventEnrollmentCompleted, "inst-1").Return(nil, nil)

	err := f.svc.Trigger(context.Background(), domain.EventEnrollmentCompleted, nil, "inst-1")
	require.NoError(t, err)
}
