package models

import "errors"

// Domain errors that can be returned by repositories and entities
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTransaction indicates a transaction with the same transaction_id already exists
	ErrDuplicateTransaction = errors.New("duplicate transaction")

	// ErrDuplicateAccountNumber indicates the generated account number is already taken
	ErrDuplicateAccountNumber = errors.New("duplicate account number")

	// ErrConflict indicates a concurrent write invalidated the version that was read
	ErrConflict = errors.New("concurrent modification")

	// ErrInsufficientFunds indicates a debit would take the balance below the overdraft floor
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransition indicates a transaction status change the state machine forbids
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAmountOutOfRange indicates an amount or balance exceeds what the ledger can store
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrInvalidTransaction indicates a transaction violates its reference or amount rules
	ErrInvalidTransaction = errors.New("invalid transaction")
)
