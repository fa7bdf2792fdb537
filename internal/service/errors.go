package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may safely repeat the request.
// The ledger never retries on its own.
func (e *ServiceError) Retryable() bool {
	return e.Code == ErrCodeConflict || e.Code == ErrCodeTimeout
}

// Common error codes
const (
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeAccountInactive     = "account_inactive"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeInsufficientFunds   = "insufficient_funds"
	ErrCodeCurrencyMismatch    = "currency_mismatch"
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeConflict            = "conflict"
	ErrCodeTimeout             = "timeout"
	ErrCodeInternalError       = "internal_error"
)
