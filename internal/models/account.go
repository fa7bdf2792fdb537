package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// Valid reports whether t is a known account type
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit:
		return true
	}
	return false
}

// NumberPrefix returns the leading digit used for account numbers of this type
func (t AccountType) NumberPrefix() string {
	switch t {
	case AccountTypeChecking:
		return "1"
	case AccountTypeSavings:
		return "2"
	default:
		return "3"
	}
}

// AccountStatus represents the lifecycle status of an account
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusFrozen   AccountStatus = "frozen"
	AccountStatusClosed   AccountStatus = "closed"
)

// Account represents a customer account and its balance
type Account struct {
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	LastActivityAt time.Time       `db:"last_activity_at"`
	Balance        decimal.Decimal `db:"balance"`
	OverdraftLimit decimal.Decimal `db:"overdraft_limit"`
	AccountNumber  string          `db:"account_number"`
	Type           AccountType     `db:"account_type"`
	Currency       Currency        `db:"currency"`
	Status         AccountStatus   `db:"status"`
	Version        int64           `db:"version"`
	ID             uuid.UUID       `db:"id"`
	OwnerID        uuid.UUID       `db:"owner_id"`
}

// AccountSummary is the public view of an account shown to users who do not own it
type AccountSummary struct {
	AccountNumber string
	Type          AccountType
}

// NewAccount builds an active account with its number already assigned.
func NewAccount(
	accountNumber string,
	ownerID uuid.UUID,
	accountType AccountType,
	currency Currency,
	openingBalance, overdraftLimit decimal.Decimal,
	now time.Time,
) (*Account, error) {
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if !accountType.Valid() {
		return nil, fmt.Errorf("invalid account type %q", accountType)
	}
	if !currency.Valid() {
		return nil, fmt.Errorf("invalid currency %q", currency)
	}
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("opening balance cannot be negative")
	}
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("overdraft limit cannot be negative")
	}

	return &Account{
		ID:             uuid.New(),
		AccountNumber:  accountNumber,
		OwnerID:        ownerID,
		Type:           accountType,
		Currency:       currency,
		Status:         AccountStatusActive,
		Balance:        openingBalance,
		OverdraftLimit: overdraftLimit,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}, nil
}

// IsActive reports whether the account accepts ledger operations
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Available returns the funds that can still be debited, overdraft included
func (a *Account) Available() decimal.Decimal {
	return a.Balance.Add(a.OverdraftLimit)
}

// CanDebit reports whether debiting amount keeps balance >= -overdraftLimit
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return !a.Balance.Sub(amount).LessThan(a.OverdraftLimit.Neg())
}

// CanCredit reports whether the balance stays storable after adding amount
func (a *Account) CanCredit(amount decimal.Decimal) bool {
	return InRange(a.Balance.Add(amount))
}

// Credit increases the balance by amount
func (a *Account) Credit(amount decimal.Decimal, now time.Time) {
	a.Balance = a.Balance.Add(amount)
	a.touch(now)
}

// Debit decreases the balance by amount, refusing to cross the overdraft floor
func (a *Account) Debit(amount decimal.Decimal, now time.Time) error {
	if !a.CanDebit(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.touch(now)
	return nil
}

// Summary returns the reduced public view of the account
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		AccountNumber: a.AccountNumber,
		Type:          a.Type,
	}
}

func (a *Account) touch(now time.Time) {
	a.LastActivityAt = now
	a.UpdatedAt = now
}
