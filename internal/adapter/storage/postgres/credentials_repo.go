package postgres

import (
	"context"
	"errors"
	"fmt"

	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// CredentialsRepo implements ports.CredentialsProvider: it resolves the
// encrypted connector credentials of a tenant instance and decrypts them
// for replay calls.
type CredentialsRepo struct {
	pool    Pool
	secrets ports.SecretsService
}

// NewCredentialsRepo creates a new CredentialsRepo.
func NewCredentialsRepo(pool Pool, secrets ports.SecretsService) *CredentialsRepo {
	return &CredentialsRepo{pool: pool, secrets: secrets}
}

// Get returns the decrypted provider API credentials for an instance.
// A missing or inactive connector is a permanent error (CFG_002), as is an
// undecryptable credential blob (CFG_003).
func (r *CredentialsRepo) Get(ctx context.Context, instanceID string) (string, error) {
	query := `SELECT credentials_enc FROM instance_connectors
		WHERE instance_id = $1 AND is_active`

	var enc string
	err := r.pool.QueryRow(ctx, query, instanceID).Scan(&enc)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperror.ErrConnectorMissing()
	}
	if err != nil {
		return "", fmt.Errorf("query instance connector: %w", err)
	}

	creds, err := r.secrets.Decrypt(enc)
	if err != nil {
		return "", apperror.ErrCredentialsDecrypt(err)
	}
	return creds, nil
}
