package repository

import (
	"errors"
	"fmt"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/lib/pq"
)

// PostgreSQL error codes the repositories react to
const (
	pqUniqueViolation      = pq.ErrorCode("23505")
	pqNumericOutOfRange    = pq.ErrorCode("22003")
	pqSerializationFailure = pq.ErrorCode("40001")
	pqDeadlockDetected     = pq.ErrorCode("40P01")
	pqLockNotAvailable     = pq.ErrorCode("55P03")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// translatePQError maps lost concurrency races onto models.ErrConflict so the
// service can report them as retryable, and numeric overflow onto
// models.ErrAmountOutOfRange.
func translatePQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
		return fmt.Errorf("%w: %s", models.ErrConflict, pqErr.Message)
	case pqNumericOutOfRange:
		return fmt.Errorf("%w: %s", models.ErrAmountOutOfRange, pqErr.Message)
	default:
		return err
	}
}
