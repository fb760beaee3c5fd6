package postgres

import (
	"context"
	"fmt"

	"enrollment-dispatch/internal/core/domain"
)

// DeliveryLogRepo implements ports.DeliveryLogRepository. Rows are written
// once per delivery attempt and read by the admin surface; nothing here
// updates or deletes them.
type DeliveryLogRepo struct {
	pool Pool
}

// NewDeliveryLogRepo creates a new DeliveryLogRepo.
func NewDeliveryLogRepo(pool Pool) *DeliveryLogRepo {
	return &DeliveryLogRepo{pool: pool}
}

// Append records one delivery attempt.
func (r *DeliveryLogRepo) Append(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	query := `INSERT INTO webhook_delivery_logs (id, endpoint_id, event, payload, http_status, success, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.EndpointID, log.Event, log.Payload,
		log.HTTPStatus, log.Success, log.Error, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery log: %w", err)
	}
	return nil
}
