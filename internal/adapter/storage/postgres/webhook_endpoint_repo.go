package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookEndpointRepo implements ports.WebhookEndpointRepository.
type WebhookEndpointRepo struct {
	pool Pool
}

// NewWebhookEndpointRepo creates a new WebhookEndpointRepo.
func NewWebhookEndpointRepo(pool Pool) *WebhookEndpointRepo {
	return &WebhookEndpointRepo{pool: pool}
}

const endpointColumns = `id, instance_id, url, secret_enc, events, is_active,
	success_count, failure_count, last_triggered_at, created_at, updated_at`

// GetForEvent fetches active endpoints of the instance subscribed to event,
// directly or via a "*" subscription.
func (r *WebhookEndpointRepo) GetForEvent(ctx context.Context, event, instanceID string) ([]domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints
		WHERE instance_id = $1 AND is_active
		AND ($2 = ANY(events) OR '*' = ANY(events))
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, instanceID, event)
	if err != nil {
		return nil, fmt.Errorf("query webhook endpoints: %w", err)
	}
	defer rows.Close()

	var endpoints []domain.WebhookEndpoint
	for rows.Next() {
		ep, err := scanEndpoint(rows)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, *ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook endpoints: %w", err)
	}
	return endpoints, nil
}

// GetByID fetches an endpoint by UUID. Returns nil, nil when absent.
func (r *WebhookEndpointRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints WHERE id = $1`

	ep, err := scanEndpoint(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return ep, err
}

// RecordDeliveryOutcome bumps the endpoint's success or failure counter and
// stamps the last delivery attempt.
func (r *WebhookEndpointRepo) RecordDeliveryOutcome(ctx context.Context, endpointID uuid.UUID, success bool) error {
	query := `UPDATE webhook_endpoints SET failure_count = failure_count + 1, last_triggered_at = $1 WHERE id = $2`
	if success {
		query = `UPDATE webhook_endpoints SET success_count = success_count + 1, last_triggered_at = $1 WHERE id = $2`
	}

	tag, err := r.pool.Exec(ctx, query, time.Now(), endpointID)
	if err != nil {
		return fmt.Errorf("record delivery outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook endpoint not found: %s", endpointID)
	}
	return nil
}

func scanEndpoint(row pgx.Row) (*domain.WebhookEndpoint, error) {
	var ep domain.WebhookEndpoint
	err := row.Scan(
		&ep.ID, &ep.InstanceID, &ep.URL, &ep.Secret, &ep.Events, &ep.IsActive,
		&ep.SuccessCount, &ep.FailureCount, &ep.LastTriggeredAt, &ep.CreatedAt, &ep.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan webhook endpoint: %w", err)
	}
	return &ep, nil
}
