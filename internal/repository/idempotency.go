package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/personal-bank/internal/db"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/google/uuid"
)

// IdempotencyRepository stores replayable responses per owner, key and path.
// A key is reserved before the request runs and completed or released after.
//
//go:generate mockery --name IdempotencyRepository --output mocks --outpkg mocks --structname MockIdempotencyRepository
type IdempotencyRepository interface {
	Get(ctx context.Context, ownerID uuid.UUID, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, idemKey *models.IdempotencyKey, staleBefore time.Time) (bool, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, ownerID uuid.UUID, key, requestPath string) error
}

type idempotencyRepository struct {
	db db.Querier
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(q db.Querier) IdempotencyRepository {
	return &idempotencyRepository{db: q}
}

// Get returns the stored entry, or nil when the key was never reserved
func (r *idempotencyRepository) Get(ctx context.Context, ownerID uuid.UUID, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT owner_id, key, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE owner_id = $1 AND key = $2 AND request_path = $3
	`

	var idemKey models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, ownerID, key, requestPath).Scan(
		&idemKey.OwnerID,
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Reserve claims a key for one in-flight request. It reports false when
// another request already holds the key or has completed it. A pending
// reservation older than staleBefore is taken over.
func (r *idempotencyRepository) Reserve(ctx context.Context, idemKey *models.IdempotencyKey, staleBefore time.Time) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (owner_id, key, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, $3, 0, '', $4)
		ON CONFLICT (owner_id, key, request_path) DO UPDATE
		SET created_at = EXCLUDED.created_at
		WHERE idempotency_keys.response_status = 0 AND idempotency_keys.created_at < $5
	`

	createdAt := idemKey.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		idemKey.OwnerID,
		idemKey.Key,
		idemKey.RequestPath,
		createdAt,
		staleBefore,
	)
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// Store completes a reservation with the response to replay. A key that is
// already completed keeps its first response.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		UPDATE idempotency_keys
		SET response_status = $4, response_body = $5
		WHERE owner_id = $1 AND key = $2 AND request_path = $3 AND response_status = 0
	`

	_, err := r.db.ExecContext(ctx, query,
		idemKey.OwnerID,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}

// Release drops a pending reservation so the key can be retried
func (r *idempotencyRepository) Release(ctx context.Context, ownerID uuid.UUID, key, requestPath string) error {
	query := `
		DELETE FROM idempotency_keys
		WHERE owner_id = $1 AND key = $2 AND request_path = $3 AND response_status = 0
	`

	if _, err := r.db.ExecContext(ctx, query, ownerID, key, requestPath); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
