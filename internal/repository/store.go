package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benx421/personal-bank/internal/db"
)

// TxFunc runs against repositories bound to a single database transaction
type TxFunc func(ctx context.Context, accounts AccountRepository, transactions TransactionRepository) error

// Store is the unit of work over accounts and the transaction log.
// Everything fn writes inside WithinTx commits together or not at all.
type Store interface {
	WithinTx(ctx context.Context, fn TxFunc) error
	Accounts() AccountRepository
	Transactions() TransactionRepository
}

type postgresStore struct {
	db *db.DB
}

// NewStore creates a Store backed by the PostgreSQL pool
func NewStore(database *db.DB) Store {
	return &postgresStore{db: database}
}

// WithinTx begins a read-committed transaction, runs fn and commits when fn succeeds
func (s *postgresStore) WithinTx(ctx context.Context, fn TxFunc) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(ctx, NewAccountRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translatePQError(err))
	}

	return nil
}

// Accounts returns a repository reading outside any transaction
func (s *postgresStore) Accounts() AccountRepository {
	return NewAccountRepository(s.db)
}

// Transactions returns a repository reading outside any transaction
func (s *postgresStore) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}
