package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"enrollment-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubmissionRepo implements ports.SubmissionRepository. Submissions are
// owned by the host platform; this subsystem reads them for replay and
// writes only the status column.
type SubmissionRepo struct {
	pool Pool
}

// NewSubmissionRepo creates a new SubmissionRepo.
func NewSubmissionRepo(pool Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

// GetByID fetches a submission by UUID. Returns nil, nil when absent.
func (r *SubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `SELECT id, instance_id, status, form_data, created_at, updated_at
		FROM submissions WHERE id = $1`

	var (
		sub     domain.Submission
		rawForm []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.InstanceID, &sub.Status, &rawForm, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	if len(rawForm) > 0 {
		if err := json.Unmarshal(rawForm, &sub.FormData); err != nil {
			return nil, fmt.Errorf("decode submission form data: %w", err)
		}
	}
	return &sub, nil
}

// UpdateStatus writes the submission lifecycle status.
func (r *SubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus) error {
	query := `UPDATE submissions SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission not found: %s", id)
	}
	return nil
}
