package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeFee        TransactionType = "fee"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeFee:
		return true
	}
	return false
}

// TransactionStatus represents the status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Valid reports whether s is a known transaction status
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed || s == TransactionStatusCancelled
}

// Category classifies a transaction for the owner's own bookkeeping
type Category string

const (
	CategorySalary         Category = "salary"
	CategoryRent           Category = "rent"
	CategoryGroceries      Category = "groceries"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryTransportation Category = "transportation"
	CategoryShopping       Category = "shopping"
	CategoryOther          Category = "other"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategorySalary, CategoryRent, CategoryGroceries, CategoryUtilities, CategoryEntertainment,
		CategoryHealthcare, CategoryEducation, CategoryTransportation, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Transaction is an entry in the append-only ledger log
type Transaction struct {
	CreatedAt     time.Time         `db:"created_at"`
	ProcessedAt   *time.Time        `db:"processed_at"`
	CompletedAt   *time.Time        `db:"completed_at"`
	FailedAt      *time.Time        `db:"failed_at"`
	Metadata      map[string]any    `db:"metadata"`
	FromAccount   *string           `db:"from_account"`
	ToAccount     *string           `db:"to_account"`
	Amount        decimal.Decimal   `db:"amount"`
	TransactionID string            `db:"transaction_id"`
	Description   string            `db:"description"`
	FailureReason string            `db:"failure_reason"`
	Type          TransactionType   `db:"type"`
	Status        TransactionStatus `db:"status"`
	Currency      Currency          `db:"currency"`
	Category      Category          `db:"category"`
	Seq           int64             `db:"seq"`
	ID            uuid.UUID         `db:"id"`
}

// TransactionParams carries the fields needed to create a transaction
type TransactionParams struct {
	Metadata      map[string]any
	FromAccount   *string
	ToAccount     *string
	Amount        decimal.Decimal
	TransactionID string
	Description   string
	Type          TransactionType
	Currency      Currency
	Category      Category
}

// NewTransaction builds a pending transaction after checking its invariants.
// The transaction id must already be generated.
func NewTransaction(p TransactionParams, now time.Time) (*Transaction, error) {
	if err := validateParams(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	category := p.Category
	if category == "" {
		category = CategoryOther
	}

	return &Transaction{
		ID:            uuid.New(),
		TransactionID: p.TransactionID,
		Type:          p.Type,
		Amount:        p.Amount,
		Currency:      p.Currency,
		FromAccount:   p.FromAccount,
		ToAccount:     p.ToAccount,
		Status:        TransactionStatusPending,
		Description:   p.Description,
		Category:      category,
		Metadata:      p.Metadata,
		CreatedAt:     now,
	}, nil
}

func validateParams(p TransactionParams) error {
	if p.TransactionID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if !p.Type.Valid() {
		return fmt.Errorf("unknown type %q", p.Type)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}
	if !p.Currency.Valid() {
		return fmt.Errorf("unknown currency %q", p.Currency)
	}
	if p.Category != "" && !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}

	hasFrom := p.FromAccount != nil && *p.FromAccount != ""
	hasTo := p.ToAccount != nil && *p.ToAccount != ""

	switch p.Type {
	case TransactionTypeDeposit:
		if hasFrom {
			return fmt.Errorf("deposit cannot have a source account")
		}
		if !hasTo {
			return fmt.Errorf("deposit requires a destination account")
		}
	case TransactionTypeWithdrawal:
		if !hasFrom {
			return fmt.Errorf("withdrawal requires a source account")
		}
		if hasTo {
			return fmt.Errorf("withdrawal cannot have a destination account")
		}
	case TransactionTypeTransfer:
		if !hasFrom || !hasTo {
			return fmt.Errorf("transfer requires source and destination accounts")
		}
		if *p.FromAccount == *p.ToAccount {
			return fmt.Errorf("transfer source and destination must differ")
		}
	default:
		if !hasFrom {
			return fmt.Errorf("%s requires a source account", p.Type)
		}
	}

	return nil
}

// Transition moves the transaction to status. Terminal timestamps are set
// exactly once, on entry into the terminal state.
func (t *Transaction) Transition(status TransactionStatus, now time.Time, reason string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	if t.Status.Terminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, t.Status)
	}
	if status == t.Status {
		return fmt.Errorf("%w: already %s", ErrInvalidTransition, status)
	}

	if t.ProcessedAt == nil {
		processed := now
		t.ProcessedAt = &processed
	}

	switch status {
	case TransactionStatusCompleted:
		completed := now
		t.CompletedAt = &completed
	case TransactionStatusFailed:
		failed := now
		t.FailedAt = &failed
		t.FailureReason = reason
	case TransactionStatusCancelled:
		t.FailureReason = reason
	}

	t.Status = status
	return nil
}

// References reports whether the transaction moves funds in or out of accountNumber
func (t *Transaction) References(accountNumber string) bool {
	return (t.FromAccount != nil && *t.FromAccount == accountNumber) ||
		(t.ToAccount != nil && *t.ToAccount == accountNumber)
}

// AccountNumbers returns the account numbers the transaction references
func (t *Transaction) AccountNumbers() []string {
	numbers := make([]string, 0, 2)
	if t.FromAccount != nil {
		numbers = append(numbers, *t.FromAccount)
	}
	if t.ToAccount != nil {
		numbers = append(numbers, *t.ToAccount)
	}
	return numbers
}

// TransactionFilter narrows a transaction log query
type TransactionFilter struct {
	AccountNumbers []string
	Type           TransactionType
	Status         TransactionStatus
	Category       Category
}

// Page selects a window of results, 1-indexed
type Page struct {
	Number int
	Limit  int
}

// Pagination defaults
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Normalize clamps the page to valid bounds
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TransactionPage is one page of transactions, newest first
type TransactionPage struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
}

// Pages returns the total number of pages
func (p *TransactionPage) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// IdempotencyKey tracks processed requests to prevent duplicate operations
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
	OwnerID        uuid.UUID `db:"owner_id"`
}

// Pending reports whether the key is reserved by a request that has not
// answered yet
func (k *IdempotencyKey) Pending() bool {
	return k.ResponseStatus == 0
}
