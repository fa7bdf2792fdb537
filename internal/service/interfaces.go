package service

import (
	"context"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Ledger applies balance-changing operations
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --structname MockLedger
type Ledger interface {
	Deposit(ctx context.Context, ownerID uuid.UUID, req DepositRequest) (*OperationResult, error)
	Withdraw(ctx context.Context, ownerID uuid.UUID, req WithdrawRequest) (*OperationResult, error)
	Transfer(ctx context.Context, ownerID uuid.UUID, req TransferRequest) (*TransferResult, error)
}

// AccountManager opens and looks up the caller's accounts
//
//go:generate mockery --name AccountManager --output mocks --outpkg mocks --structname MockAccountManager
type AccountManager interface {
	Open(ctx context.Context, ownerID uuid.UUID, req OpenAccountRequest) (*OpenAccountResult, error)
	Get(ctx context.Context, ownerID uuid.UUID, accountNumber string) (*models.Account, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error)
}

// HistoryReader serves read-only views of the transaction log
//
//go:generate mockery --name HistoryReader --output mocks --outpkg mocks --structname MockHistoryReader
type HistoryReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter HistoryFilter, page models.Page) (*HistoryPage, error)
	ListForAccount(ctx context.Context, ownerID uuid.UUID, accountNumber string, page models.Page) (*HistoryPage, error)
	Get(ctx context.Context, ownerID uuid.UUID, transactionID string) (*TransactionView, error)
}

// OperationResult is returned by single-account ledger operations
type OperationResult struct {
	Account     *models.Account
	Transaction *models.Transaction
}

// TransferResult carries the full source account but only the public view
// of the destination, which may belong to someone else.
type TransferResult struct {
	Transaction *models.Transaction
	FromAccount *models.Account
	ToAccount   models.AccountSummary
}

// OpenAccountResult holds the new account and its initial deposit, if any
type OpenAccountResult struct {
	Account     *models.Account
	Transaction *models.Transaction
}

// Ensure concrete types implement interfaces
var (
	_ Ledger         = (*LedgerService)(nil)
	_ AccountManager = (*AccountService)(nil)
	_ HistoryReader  = (*HistoryService)(nil)
)
