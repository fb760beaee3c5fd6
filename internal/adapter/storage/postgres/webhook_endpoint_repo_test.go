package postgres

import (
	"context"
	"testing"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endpointColumnNames() []string {
	return []string{"id", "instance_id", "url", "secret_enc", "events", "is_active",
		"success_count", "failure_count", "last_triggered_at", "created_at", "updated_at"}
}

func newTestEndpoint() *domain.WebhookEndpoint {
	now := time.Now().UTC().Truncate(time.Microsecond)
	secret := "encrypted-secret"
	return &domain.WebhookEndpoint{
		ID:           uuid.New(),
		InstanceID:   "inst-1",
		URL:          "https://hooks.example.com/enroll",
		Secret:       &secret,
		Events:       []string{"enrollment.completed", "enrollment.failed"},
		IsActive:     true,
		SuccessCount: 10,
		FailureCount: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func endpointRow(ep *domain.WebhookEndpoint) *pgxmock.Rows {
	return pgxmock.NewRows(endpointColumnNames()).AddRow(
		ep.ID, ep.InstanceID, ep.URL, ep.Secret, ep.Events, ep.IsActive,
		ep.SuccessCount, ep.FailureCount, ep.LastTriggeredAt, ep.CreatedAt, ep.UpdatedAt,
	)
}

func TestWebhookEndpointRepo_GetForEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEndpointRepo(mock)
	ep := newTestEndpoint()

	mock.ExpectQuery("SELECT (.+) FROM webhook_endpoints").
		WithArgs("inst-1", "enrollment.completed").
		WillReturnRows(endpointRow(ep))

	endpoints, err := repo.GetForEvent(context.Background(), "enrollment.completed", "inst-1")
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, ep.ID, endpoints[0].ID)
	assert.Equal(t, ep.Events, endpoints[0].Events)
	require.NotNil(t, endpoints[0].Secret)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEndpointRepo_GetForEvent_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEndpointRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM webhook_endpoints").
		WithArgs("inst-1", "appointment.booked").
		WillReturnRows(pgxmock.NewRows(endpointColumnNames()))

	endpoints, err := repo.GetForEvent(context.Background(), "appointment.booked", "inst-1")
	require.NoError(t, err)
	assert.Empty(t, endpoints)
}

func TestWebhookEndpointRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEndpointRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM webhook_endpoints WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(endpointColumnNames()))

	ep, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, ep)
}

func TestWebhookEndpointRepo_RecordDeliveryOutcome(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookEndpointRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE webhook_endpoints SET success_count").
		WithArgs(pgxmock.AnyArg(), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.RecordDeliveryOutcome(context.Background(), id, true))

	mock.ExpectExec("UPDATE webhook_endpoints SET failure_count").
		WithArgs(pgxmock.AnyArg(), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.RecordDeliveryOutcome(context.Background(), id, false))

	require.NoError(t, mock.ExpectationsWereMet())
}
