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

// RetryRepo implements ports.RetryRepository.
type RetryRepo struct {
	pool Pool
}

// NewRetryRepo creates a new RetryRepo.
func NewRetryRepo(pool Pool) *RetryRepo {
	return &RetryRepo{pool: pool}
}

const retryColumns = `id, submission_id, instance_id, retry_count, max_retries,
	last_error, next_retry_at, status, created_at, updated_at`

// Insert persists a new retry record.
func (r *RetryRepo) Insert(ctx context.Context, rec *domain.RetryRecord) error {
	query := `INSERT INTO retry_records (id, submission_id, instance_id, retry_count, max_retries,
		last_error, next_retry_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.SubmissionID, rec.InstanceID, rec.RetryCount, rec.MaxRetries,
		rec.LastError, rec.NextRetryAt, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert retry record: %w", err)
	}
	return nil
}

// GetByID fetches a retry record by UUID. Returns nil, nil when absent.
func (r *RetryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RetryRecord, error) {
	query := `SELECT ` + retryColumns + ` FROM retry_records WHERE id = $1`
	return r.scanRecord(r.pool.QueryRow(ctx, query, id))
}

// GetInFlightBySubmission fetches the pending or processing record for a
// submission, if one exists. At most one can be in flight at a time.
func (r *RetryRepo) GetInFlightBySubmission(ctx context.Context, submissionID uuid.UUID) (*domain.RetryRecord, error) {
	query := `SELECT ` + retryColumns + ` FROM retry_records
		WHERE submission_id = $1 AND status IN ('pending', 'processing')
		LIMIT 1`
	return r.scanRecord(r.pool.QueryRow(ctx, query, submissionID))
}

// ClaimDue atomically transitions due pending records to processing and
// returns them. The conditional UPDATE with SKIP LOCKED means two worker
// runs can never claim the same record.
func (r *RetryRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.RetryRecord, error) {
	query := `UPDATE retry_records SET status = 'processing', updated_at = $1
		WHERE id IN (
			SELECT id FROM retry_records
			WHERE status = 'pending' AND next_retry_at <= $1
			ORDER BY next_retry_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + retryColumns

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due retry records: %w", err)
	}
	defer rows.Close()

	var records []domain.RetryRecord
	for rows.Next() {
		var rec domain.RetryRecord
		if err := rows.Scan(
			&rec.ID, &rec.SubmissionID, &rec.InstanceID, &rec.RetryCount, &rec.MaxRetries,
			&rec.LastError, &rec.NextRetryAt, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan claimed record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed records: %w", err)
	}
	return records, nil
}

// Update persists the mutable fields of a record.
func (r *RetryRepo) Update(ctx context.Context, rec *domain.RetryRecord) error {
	query := `UPDATE retry_records SET retry_count = $1, last_error = $2,
		next_retry_at = $3, status = $4, updated_at = $5 WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		rec.RetryCount, rec.LastError, rec.NextRetryAt, rec.Status, rec.UpdatedAt, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update retry record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("retry record not found: %s", rec.ID)
	}
	return nil
}

// ReclaimStuck returns processing records last touched before cutoff to
// pending, making them due immediately.
func (r *RetryRepo) ReclaimStuck(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE retry_records SET status = 'pending', next_retry_at = now(), updated_at = now()
		WHERE status = 'processing' AND updated_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reclaim stuck records: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RetryRepo) scanRecord(row pgx.Row) (*domain.RetryRecord, error) {
	var rec domain.RetryRecord
	err := row.Scan(
		&rec.ID, &rec.SubmissionID, &rec.InstanceID, &rec.RetryCount, &rec.MaxRetries,
		&rec.LastError, &rec.NextRetryAt, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan retry record: %w", err)
	}
	return &rec, nil
}
