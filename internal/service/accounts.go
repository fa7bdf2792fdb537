package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/personal-bank/internal/events"
	"github.com/benx421/personal-bank/internal/ids"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AccountService opens accounts and serves owner-scoped account lookups
type AccountService struct {
	store     repository.Store
	numbers   ids.AccountNumberGenerator
	txnIDs    ids.TransactionIDGenerator
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	attempts  int
	timeout   time.Duration
}

// NewAccountService creates a new AccountService. attempts bounds how many
// account numbers are tried before giving up on collisions.
func NewAccountService(
	store repository.Store,
	numbers ids.AccountNumberGenerator,
	txnIDs ids.TransactionIDGenerator,
	publisher events.Publisher,
	attempts int,
	timeout time.Duration,
	logger *slog.Logger,
) *AccountService {
	if attempts < 1 {
		attempts = 1
	}

	return &AccountService{
		store:     store,
		numbers:   numbers,
		txnIDs:    txnIDs,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		attempts:  attempts,
		timeout:   timeout,
	}
}

// Open creates an account for ownerID. A positive initial deposit is recorded
// as a completed deposit in the same unit of work.
func (s *AccountService) Open(ctx context.Context, ownerID uuid.UUID, req OpenAccountRequest) (*OpenAccountResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}
	req.Currency = req.currency()

	if req.InitialDeposit.IsNegative() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "initial deposit cannot be negative",
		}
	}
	if err := req.Currency.CheckPrecision(req.InitialDeposit); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}
	if !models.InRange(req.InitialDeposit) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: fmt.Sprintf("initial deposit must not exceed %s", models.MaxAmount()),
		}
	}

	ctx, span := tracer.Start(ctx, "accounts.Open", trace.WithAttributes(
		attribute.String("account_type", string(req.Type)),
		attribute.String("currency", string(req.Currency)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for attempt := 1; attempt <= s.attempts; attempt++ {
		number, err := s.numbers.NewAccountNumber(req.Type)
		if err != nil {
			s.logger.Error("failed to generate account number", "error", err)
			return nil, recordSpanError(span, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: "internal error",
				Err:     err,
			})
		}

		var result *OpenAccountResult
		err = s.store.WithinTx(ctx, func(ctx context.Context, accounts repository.AccountRepository, transactions repository.TransactionRepository) error {
			var err error
			result, err = s.performOpen(ctx, accounts, transactions, ownerID, number, req)
			return err
		})
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			s.logger.Debug("account number collision, retrying", "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, recordSpanError(span, classifyFailure(ctx, s.logger, "open", err))
		}

		s.logger.Info("account opened",
			"account_number", result.Account.AccountNumber,
			"account_type", result.Account.Type,
		)
		if result.Transaction != nil {
			publishEvent(ctx, s.publisher, s.logger, s.timeout, ownerID, result.Transaction, result.Account)
		}
		return result, nil
	}

	return nil, recordSpanError(span, &ServiceError{
		Code:    ErrCodeConflict,
		Message: "could not allocate an account number, please retry",
		Err:     models.ErrDuplicateAccountNumber,
	})
}

// performOpen contains the core account opening logic
func (s *AccountService) performOpen(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	ownerID uuid.UUID,
	accountNumber string,
	req OpenAccountRequest,
) (*OpenAccountResult, error) {
	now := s.now()

	account, err := models.NewAccount(accountNumber, ownerID, req.Type, req.Currency, req.InitialDeposit, req.OverdraftLimit, now)
	if err != nil {
		return nil, invalidRequest(err)
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	result := &OpenAccountResult{Account: account}
	if !req.InitialDeposit.IsPositive() {
		return result, nil
	}

	txn, err := newCompletedTransaction(s.txnIDs, models.TransactionParams{
		Type:        models.TransactionTypeDeposit,
		Amount:      req.InitialDeposit,
		Currency:    account.Currency,
		ToAccount:   stringPtr(account.AccountNumber),
		Description: descriptionInitialDeposit,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := transactionRepo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append initial deposit: %w", err)
	}
	result.Transaction = txn

	return result, nil
}

// Get returns an account owned by ownerID
func (s *AccountService) Get(ctx context.Context, ownerID uuid.UUID, accountNumber string) (*models.Account, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	account, err := s.store.Accounts().FindByNumber(ctx, accountNumber, ownerID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, accountNotFound(accountNumber)
	}
	if err != nil {
		s.logger.Error("failed to get account", "account_number", accountNumber, "error", err)
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "internal error",
			Err:     err,
		}
	}

	return account, nil
}

// List returns every account owned by ownerID, newest first
func (s *AccountService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	accounts, err := s.store.Accounts().FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err)
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "internal error",
			Err:     err,
		}
	}

	if accounts == nil {
		accounts = []*models.Account{}
	}
	return accounts, nil
}
