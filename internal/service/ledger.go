package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/benx421/personal-bank/internal/events"
	"github.com/benx421/personal-bank/internal/ids"
	"github.com/benx421/personal-bank/internal/lock"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("personal-bank/service")

// Default transaction descriptions
const (
	descriptionDeposit        = "Deposit"
	descriptionWithdrawal     = "Withdrawal"
	descriptionTransferPrefix = "Transfer to "
	descriptionInitialDeposit = "Initial deposit"
)

// LedgerService applies deposits, withdrawals and transfers. Each operation
// holds the account locks, mutates balances and appends exactly one
// transaction inside a single unit of work.
type LedgerService struct {
	store     repository.Store
	locker    lock.Locker
	publisher events.Publisher
	txnIDs    ids.TransactionIDGenerator
	logger    *slog.Logger
	now       func() time.Time
	timeout   time.Duration
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	store repository.Store,
	locker lock.Locker,
	publisher events.Publisher,
	txnIDs ids.TransactionIDGenerator,
	timeout time.Duration,
	logger *slog.Logger,
) *LedgerService {
	return &LedgerService{
		store:     store,
		locker:    locker,
		publisher: publisher,
		txnIDs:    txnIDs,
		logger:    logger,
		now:       time.Now,
		timeout:   timeout,
	}
}

// Deposit credits an account owned by ownerID
func (s *LedgerService) Deposit(ctx context.Context, ownerID uuid.UUID, req DepositRequest) (*OperationResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	ctx, span := tracer.Start(ctx, "ledger.Deposit", trace.WithAttributes(
		attribute.String("account_number", req.AccountNumber),
		attribute.String("amount", req.Amount.String()),
	))
	defer span.End()

	var result *OperationResult
	err := s.run(ctx, "deposit", []string{req.AccountNumber}, func(ctx context.Context, accounts repository.AccountRepository, transactions repository.TransactionRepository) error {
		var err error
		result, err = s.performDeposit(ctx, accounts, transactions, ownerID, req)
		return err
	})
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	span.SetAttributes(attribute.String("transaction_id", result.Transaction.TransactionID))
	s.publish(ctx, ownerID, result.Transaction, result.Account)
	return result, nil
}

// performDeposit contains the core deposit business logic
func (s *LedgerService) performDeposit(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	ownerID uuid.UUID,
	req DepositRequest,
) (*OperationResult, error) {
	account, err := findOwnedForUpdate(ctx, accountRepo, req.AccountNumber, ownerID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAmount(req.Amount, account.Currency); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	if !account.CanCredit(req.Amount) {
		return nil, balanceOutOfRange(account)
	}

	now := s.now()
	account.Credit(req.Amount, now)

	txn, err := s.completedTransaction(models.TransactionParams{
		Type:        models.TransactionTypeDeposit,
		Amount:      req.Amount,
		Currency:    account.Currency,
		ToAccount:   stringPtr(account.AccountNumber),
		Description: descriptionOr(req.Description, descriptionDeposit),
		Category:    req.Category,
		Metadata:    req.Metadata,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := accountRepo.Persist(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist account: %w", err)
	}
	if err := transactionRepo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &OperationResult{Account: account, Transaction: txn}, nil
}

// Withdraw debits an account owned by ownerID, never below its overdraft floor
func (s *LedgerService) Withdraw(ctx context.Context, ownerID uuid.UUID, req WithdrawRequest) (*OperationResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	ctx, span := tracer.Start(ctx, "ledger.Withdraw", trace.WithAttributes(
		attribute.String("account_number", req.AccountNumber),
		attribute.String("amount", req.Amount.String()),
	))
	defer span.End()

	var result *OperationResult
	err := s.run(ctx, "withdraw", []string{req.AccountNumber}, func(ctx context.Context, accounts repository.AccountRepository, transactions repository.TransactionRepository) error {
		var err error
		result, err = s.performWithdraw(ctx, accounts, transactions, ownerID, req)
		return err
	})
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	span.SetAttributes(attribute.String("transaction_id", result.Transaction.TransactionID))
	s.publish(ctx, ownerID, result.Transaction, result.Account)
	return result, nil
}

// performWithdraw contains the core withdrawal business logic
func (s *LedgerService) performWithdraw(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	ownerID uuid.UUID,
	req WithdrawRequest,
) (*OperationResult, error) {
	account, err := findOwnedForUpdate(ctx, accountRepo, req.AccountNumber, ownerID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAmount(req.Amount, account.Currency); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	now := s.now()
	if err := account.Debit(req.Amount, now); err != nil {
		return nil, insufficientFunds(err)
	}

	txn, err := s.completedTransaction(models.TransactionParams{
		Type:        models.TransactionTypeWithdrawal,
		Amount:      req.Amount,
		Currency:    account.Currency,
		FromAccount: stringPtr(account.AccountNumber),
		Description: descriptionOr(req.Description, descriptionWithdrawal),
		Category:    req.Category,
		Metadata:    req.Metadata,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := accountRepo.Persist(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist account: %w", err)
	}
	if err := transactionRepo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &OperationResult{Account: account, Transaction: txn}, nil
}

// Transfer moves funds from an account owned by ownerID to any active account
// in the same currency.
func (s *LedgerService) Transfer(ctx context.Context, ownerID uuid.UUID, req TransferRequest) (*TransferResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	ctx, span := tracer.Start(ctx, "ledger.Transfer", trace.WithAttributes(
		attribute.String("from_account", req.FromAccountNumber),
		attribute.String("to_account", req.ToAccountNumber),
		attribute.String("amount", req.Amount.String()),
	))
	defer span.End()

	var result *TransferResult
	keys := []string{req.FromAccountNumber, req.ToAccountNumber}
	err := s.run(ctx, "transfer", keys, func(ctx context.Context, accounts repository.AccountRepository, transactions repository.TransactionRepository) error {
		var err error
		result, err = s.performTransfer(ctx, accounts, transactions, ownerID, req)
		return err
	})
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	span.SetAttributes(attribute.String("transaction_id", result.Transaction.TransactionID))
	s.publish(ctx, ownerID, result.Transaction, result.FromAccount)
	return result, nil
}

// performTransfer contains the core transfer business logic
func (s *LedgerService) performTransfer(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	ownerID uuid.UUID,
	req TransferRequest,
) (*TransferResult, error) {
	if req.FromAccountNumber == req.ToAccountNumber {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "cannot transfer to the same account",
		}
	}

	locked, err := lockRows(ctx, accountRepo, req.FromAccountNumber, req.ToAccountNumber)
	if err != nil {
		return nil, err
	}

	from := locked[req.FromAccountNumber]
	if from == nil || from.OwnerID != ownerID {
		return nil, accountNotFound(req.FromAccountNumber)
	}
	if !from.IsActive() {
		return nil, accountInactive(from)
	}

	to := locked[req.ToAccountNumber]
	if to == nil {
		return nil, accountNotFound(req.ToAccountNumber)
	}
	if !to.IsActive() {
		return nil, accountInactive(to)
	}

	if from.Currency != to.Currency {
		return nil, &ServiceError{
			Code:    ErrCodeCurrencyMismatch,
			Message: fmt.Sprintf("cannot transfer %s to a %s account", from.Currency, to.Currency),
		}
	}

	if err := ValidateAmount(req.Amount, from.Currency); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	now := s.now()
	if err := from.Debit(req.Amount, now); err != nil {
		return nil, insufficientFunds(err)
	}
	if !to.CanCredit(req.Amount) {
		return nil, balanceOutOfRange(to)
	}
	to.Credit(req.Amount, now)

	txn, err := s.completedTransaction(models.TransactionParams{
		Type:        models.TransactionTypeTransfer,
		Amount:      req.Amount,
		Currency:    from.Currency,
		FromAccount: stringPtr(from.AccountNumber),
		ToAccount:   stringPtr(to.AccountNumber),
		Description: descriptionOr(req.Description, descriptionTransferPrefix+to.AccountNumber),
		Category:    req.Category,
		Metadata:    req.Metadata,
	}, now)
	if err != nil {
		return nil, err
	}

	for _, account := range sortedAccounts(from, to) {
		if err := accountRepo.Persist(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to persist account: %w", err)
		}
	}
	if err := transactionRepo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &TransferResult{
		Transaction: txn,
		FromAccount: from,
		ToAccount:   to.Summary(),
	}, nil
}

// run bounds the operation by the ledger timeout, takes the account locks and
// executes fn in one unit of work. Locks are released after commit or rollback.
func (s *LedgerService) run(ctx context.Context, op string, accountNumbers []string, fn repository.TxFunc) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	release, err := s.locker.Acquire(ctx, accountNumbers...)
	if err != nil {
		return classifyFailure(ctx, s.logger, op, err)
	}
	defer release()

	if err := s.store.WithinTx(ctx, fn); err != nil {
		return classifyFailure(ctx, s.logger, op, err)
	}

	return nil
}

// classifyFailure turns infrastructure failures into service errors. Business
// rejections raised inside the unit of work pass through unchanged.
func classifyFailure(ctx context.Context, logger *slog.Logger, op string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	switch {
	case errors.Is(err, lock.ErrLockTimeout),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded):
		logger.Warn("ledger operation timed out", "operation", op, "error", err)
		return &ServiceError{
			Code:    ErrCodeTimeout,
			Message: "operation timed out, please retry",
			Err:     err,
		}
	case errors.Is(err, context.Canceled):
		logger.Info("ledger operation cancelled", "operation", op)
		return &ServiceError{
			Code:    ErrCodeTimeout,
			Message: "operation was cancelled",
			Err:     err,
		}
	case errors.Is(err, models.ErrAmountOutOfRange):
		logger.Warn("ledger operation exceeded the storable range", "operation", op, "error", err)
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "amount exceeds the supported range",
			Err:     err,
		}
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrDuplicateTransaction):
		logger.Warn("ledger operation lost a concurrent update", "operation", op, "error", err)
		return &ServiceError{
			Code:    ErrCodeConflict,
			Message: "account was modified concurrently, please retry",
			Err:     err,
		}
	default:
		logger.Error("ledger operation failed", "operation", op, "error", err)
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "internal error",
			Err:     err,
		}
	}
}

// completedTransaction assigns a fresh transaction id and moves the new
// transaction straight to completed.
func (s *LedgerService) completedTransaction(params models.TransactionParams, now time.Time) (*models.Transaction, error) {
	return newCompletedTransaction(s.txnIDs, params, now)
}

func (s *LedgerService) publish(ctx context.Context, ownerID uuid.UUID, txn *models.Transaction, accounts ...*models.Account) {
	publishEvent(ctx, s.publisher, s.logger, s.timeout, ownerID, txn, accounts...)
}

func newCompletedTransaction(txnIDs ids.TransactionIDGenerator, params models.TransactionParams, now time.Time) (*models.Transaction, error) {
	transactionID, err := txnIDs.NewTransactionID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}
	params.TransactionID = transactionID

	txn, err := models.NewTransaction(params, now)
	if err != nil {
		return nil, err
	}
	if err := txn.Transition(models.TransactionStatusCompleted, now, ""); err != nil {
		return nil, err
	}

	return txn, nil
}

// publishEvent delivers the post-commit event. The ledger row is already
// committed, so failures are only logged.
func publishEvent(
	ctx context.Context,
	publisher events.Publisher,
	logger *slog.Logger,
	timeout time.Duration,
	ownerID uuid.UUID,
	txn *models.Transaction,
	accounts ...*models.Account,
) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	event := events.NewTransactionEvent(txn, ownerID.String(), accounts...)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish transaction event",
			"transaction_id", txn.TransactionID,
			"error", err,
		)
	}
}

// findOwnedForUpdate locks an account that must belong to ownerID and be active
func findOwnedForUpdate(ctx context.Context, accountRepo repository.AccountRepository, accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	account, err := accountRepo.FindByNumberForUpdate(ctx, accountNumber, ownerID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, accountNotFound(accountNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !account.IsActive() {
		return nil, accountInactive(account)
	}

	return account, nil
}

// lockRows reads and row-locks every named account in sorted order. Missing
// accounts map to nil so the caller decides which one to report.
func lockRows(ctx context.Context, accountRepo repository.AccountRepository, accountNumbers ...string) (map[string]*models.Account, error) {
	ordered := append([]string(nil), accountNumbers...)
	sort.Strings(ordered)

	locked := make(map[string]*models.Account, len(ordered))
	for _, number := range ordered {
		if _, seen := locked[number]; seen {
			continue
		}

		account, err := accountRepo.FindByNumberForUpdate(ctx, number, uuid.Nil)
		if errors.Is(err, models.ErrNotFound) {
			locked[number] = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock account: %w", err)
		}
		locked[number] = account
	}

	return locked, nil
}

func sortedAccounts(accounts ...*models.Account) []*models.Account {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	return accounts
}

func recordSpanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func requireOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "owner is required",
		}
	}
	return nil
}

func invalidRequest(err error) error {
	return &ServiceError{
		Code:    ErrCodeInvalidRequest,
		Message: err.Error(),
	}
}

func accountNotFound(accountNumber string) error {
	return &ServiceError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account %s not found", accountNumber),
	}
}

func accountInactive(account *models.Account) error {
	return &ServiceError{
		Code:    ErrCodeAccountInactive,
		Message: fmt.Sprintf("account %s is %s", account.AccountNumber, account.Status),
	}
}

func insufficientFunds(err error) error {
	return &ServiceError{
		Code:    ErrCodeInsufficientFunds,
		Message: "insufficient funds",
		Err:     err,
	}
}

func balanceOutOfRange(account *models.Account) error {
	return &ServiceError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("balance of account %s would exceed %s", account.AccountNumber, models.MaxAmount().String()),
		Err:     models.ErrAmountOutOfRange,
	}
}

func descriptionOr(description, fallback string) string {
	if description == "" {
		return fallback
	}
	return description
}

func stringPtr(s string) *string {
	return &s
}
