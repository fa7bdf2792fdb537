// Package repository provides data access layer implementations for the bank API.
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
	"github.com/lib/pq"
)

// AccountRepository defines the interface for account data access
//
//go:generate mockery --name AccountRepository --output mocks --outpkg mocks --structname MockAccountRepository
type AccountRepository interface {
	// FindByNumber returns the account with the given number. A uuid.Nil
	// ownerID searches every owner; otherwise the account must belong to ownerID.
	FindByNumber(ctx context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error)
	FindByNumberForUpdate(ctx context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error)
	FindByNumbers(ctx context.Context, accountNumbers []string) ([]*models.Account, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Persist(ctx context.Context, account *models.Account) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.Querier
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{db: q}
}

const accountColumns = `
	id, account_number, owner_id, account_type, currency, balance, overdraft_limit,
	status, version, created_at, updated_at, last_activity_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.OwnerID,
		&account.Type,
		&account.Currency,
		&account.Balance,
		&account.OverdraftLimit,
		&account.Status,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByNumber retrieves an account by its account number
func (r *accountRepository) FindByNumber(ctx context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
		  AND ($2::uuid IS NULL OR owner_id = $2)
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountNumber, ownerFilter(ownerID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", accountNumber, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by number: %w", err)
	}

	return account, nil
}

// FindByNumberForUpdate retrieves an account and locks its row until the
// surrounding transaction ends
func (r *accountRepository) FindByNumberForUpdate(ctx context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
		  AND ($2::uuid IS NULL OR owner_id = $2)
		FOR UPDATE
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountNumber, ownerFilter(ownerID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", accountNumber, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", translatePQError(err))
	}

	return account, nil
}

// FindByNumbers retrieves every account whose number is listed; unknown numbers are skipped
func (r *accountRepository) FindByNumbers(ctx context.Context, accountNumbers []string) ([]*models.Account, error) {
	if len(accountNumbers) == 0 {
		return nil, nil
	}

	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_number = ANY($1)
		ORDER BY account_number
	`

	return r.queryAccounts(ctx, query, pq.Array(accountNumbers))
}

// FindByOwner retrieves every account of an owner, newest first
func (r *accountRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at DESC, account_number
	`

	return r.queryAccounts(ctx, query, ownerID)
}

func (r *accountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Create inserts a new account. The account number must already be assigned.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			id, account_number, owner_id, account_type, currency, balance, overdraft_limit,
			status, version, created_at, updated_at, last_activity_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.AccountNumber,
		account.OwnerID,
		account.Type,
		account.Currency,
		account.Balance,
		account.OverdraftLimit,
		account.Status,
		account.Version,
		account.CreatedAt,
		account.UpdatedAt,
		account.LastActivityAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %s: %w", account.AccountNumber, models.ErrDuplicateAccountNumber)
		}
		return fmt.Errorf("failed to create account: %w", translatePQError(err))
	}

	return nil
}

// Persist writes the account's mutable state if nobody changed it since it was
// read, then advances its version.
func (r *accountRepository) Persist(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET balance = $3,
		    status = $4,
		    last_activity_at = $5,
		    updated_at = $6,
		    version = version + 1
		WHERE account_number = $1
		  AND version = $2
	`

	updatedAt := account.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		account.AccountNumber,
		account.Version,
		account.Balance,
		account.Status,
		account.LastActivityAt,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to persist account: %w", translatePQError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %s version %d: %w", account.AccountNumber, account.Version, models.ErrConflict)
	}

	account.Version++
	return nil
}

func ownerFilter(ownerID uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: ownerID, Valid: ownerID != uuid.Nil}
}
