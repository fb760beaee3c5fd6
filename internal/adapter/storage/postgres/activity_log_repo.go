package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityLogRepo implements ports.ActivityLogRepository: append-only
// operational events surfaced in the tenant admin UI.
type ActivityLogRepo struct {
	pool Pool
}

// NewActivityLogRepo creates a new ActivityLogRepo.
func NewActivityLogRepo(pool Pool) *ActivityLogRepo {
	return &ActivityLogRepo{pool: pool}
}

// Append records one activity entry. The context map is stored as jsonb.
func (r *ActivityLogRepo) Append(ctx context.Context, level, message string, logCtx map[string]interface{}) error {
	var details []byte
	if logCtx != nil {
		b, err := json.Marshal(logCtx)
		if err != nil {
			return fmt.Errorf("encode activity context: %w", err)
		}
		details = b
	}

	query := `INSERT INTO activity_logs (id, level, message, context, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, uuid.New(), level, message, details, time.Now())
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}
