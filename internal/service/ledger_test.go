package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/benx421/personal-bank/internal/events"
	"github.com/benx421/personal-bank/internal/lock"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/benx421/personal-bank/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestLedger(store repository.Store, locker lock.Locker) *LedgerService {
	s := NewLedgerService(store, locker, events.NoopPublisher{}, &sequenceIDs{}, time.Second, testLogger())
	s.now = func() time.Time { return fixedNow }
	return s
}

func testAccount(number string, ownerID uuid.UUID, accountType models.AccountType, balance string) *models.Account {
	return &models.Account{
		ID:            uuid.New(),
		AccountNumber: number,
		OwnerID:       ownerID,
		Type:          accountType,
		Currency:      models.CurrencyUSD,
		Status:        models.AccountStatusActive,
		Balance:       decimal.RequireFromString(balance),
		Version:       1,
	}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireCode(t *testing.T, err error, code string) *ServiceError {
	t.Helper()

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, code, svcErr.Code)
	return svcErr
}

func TestLedgerService_PerformDeposit(t *testing.T) {
	ownerID := uuid.New()

	t.Run("successful deposit", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("10000001", ownerID, models.AccountTypeChecking, "100.00")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(account, nil)
		mockAccountRepo.On("Persist", ctx, mock.AnythingOfType("*models.Account")).Return(nil)
		mockTxRepo.On("Append", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		result, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("25.50"),
		})

		require.NoError(t, err)
		assert.True(t, amount("125.50").Equal(result.Account.Balance))
		assert.Equal(t, fixedNow, result.Account.LastActivityAt)

		txn := result.Transaction
		assert.Equal(t, models.TransactionTypeDeposit, txn.Type)
		assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
		assert.Nil(t, txn.FromAccount)
		require.NotNil(t, txn.ToAccount)
		assert.Equal(t, "10000001", *txn.ToAccount)
		assert.Equal(t, "Deposit", txn.Description)
		assert.Equal(t, models.CategoryOther, txn.Category)
		assert.Equal(t, models.CurrencyUSD, txn.Currency)
		require.NotNil(t, txn.CompletedAt)
		assert.Equal(t, fixedNow, *txn.CompletedAt)
	})

	t.Run("account not found", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(nil, models.ErrNotFound)

		_, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("10"),
		})

		requireCode(t, err, ErrCodeAccountNotFound)
	})

	t.Run("inactive account is rejected before the amount", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("10000001", ownerID, models.AccountTypeChecking, "100.00")
		account.Status = models.AccountStatusFrozen

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(account, nil)

		_, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("-5"),
		})

		svcErr := requireCode(t, err, ErrCodeAccountInactive)
		assert.Contains(t, svcErr.Message, "frozen")
	})

	invalidAmounts := []struct {
		name     string
		amount   string
		currency models.Currency
	}{
		{name: "zero", amount: "0", currency: models.CurrencyUSD},
		{name: "negative", amount: "-1.00", currency: models.CurrencyUSD},
		{name: "too many decimals", amount: "10.001", currency: models.CurrencyUSD},
		{name: "fractional yen", amount: "1.5", currency: models.CurrencyJPY},
	}
	for _, tt := range invalidAmounts {
		t.Run("invalid amount "+tt.name, func(t *testing.T) {
			mockAccountRepo := mocks.NewMockAccountRepository(t)
			mockTxRepo := mocks.NewMockTransactionRepository(t)
			service := newTestLedger(nil, nil)
			ctx := context.Background()

			account := testAccount("10000001", ownerID, models.AccountTypeChecking, "100")
			account.Currency = tt.currency

			mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(account, nil)

			_, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, ownerID, DepositRequest{
				AccountNumber: "10000001",
				Amount:        amount(tt.amount),
			})

			requireCode(t, err, ErrCodeInvalidAmount)
		})
	}

	t.Run("persist failure is returned unclassified", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("10000001", ownerID, models.AccountTypeChecking, "100.00")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(account, nil)
		mockAccountRepo.On("Persist", ctx, account).Return(models.ErrConflict)

		_, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("1"),
		})

		assert.ErrorIs(t, err, models.ErrConflict)
	})
}

func TestLedgerService_PerformWithdraw(t *testing.T) {
	ownerID := uuid.New()

	t.Run("successful withdrawal", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("20000001", ownerID, models.AccountTypeSavings, "100.00")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000001", ownerID).Return(account, nil)
		mockAccountRepo.On("Persist", ctx, account).Return(nil)
		mockTxRepo.On("Append", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypeWithdrawal && txn.ToAccount == nil &&
				txn.FromAccount != nil && *txn.FromAccount == "20000001"
		})).Return(nil)

		result, err := service.performWithdraw(ctx, mockAccountRepo, mockTxRepo, ownerID, WithdrawRequest{
			AccountNumber: "20000001",
			Amount:        amount("40"),
			Description:   "ATM",
			Category:      models.CategoryGroceries,
		})

		require.NoError(t, err)
		assert.True(t, amount("60").Equal(result.Account.Balance))
		assert.Equal(t, "ATM", result.Transaction.Description)
		assert.Equal(t, models.CategoryGroceries, result.Transaction.Category)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("20000001", ownerID, models.AccountTypeSavings, "100.00")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000001", ownerID).Return(account, nil)

		_, err := service.performWithdraw(ctx, mockAccountRepo, mockTxRepo, ownerID, WithdrawRequest{
			AccountNumber: "20000001",
			Amount:        amount("150.00"),
		})

		svcErr := requireCode(t, err, ErrCodeInsufficientFunds)
		assert.Equal(t, "insufficient funds", svcErr.Message)
		assert.ErrorIs(t, err, models.ErrInsufficientFunds)
		assert.True(t, amount("100").Equal(account.Balance))
	})

	t.Run("overdraft allows a negative balance down to the limit", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("10000001", ownerID, models.AccountTypeChecking, "50.00")
		account.OverdraftLimit = amount("100.00")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", ownerID).Return(account, nil)
		mockAccountRepo.On("Persist", ctx, account).Return(nil)
		mockTxRepo.On("Append", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		result, err := service.performWithdraw(ctx, mockAccountRepo, mockTxRepo, ownerID, WithdrawRequest{
			AccountNumber: "10000001",
			Amount:        amount("150.00"),
		})

		require.NoError(t, err)
		assert.True(t, amount("-100").Equal(result.Account.Balance))
	})

	t.Run("append failure is returned unclassified", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		account := testAccount("20000001", ownerID, models.AccountTypeSavings, "100.00")
		boom := errors.New("disk full")

		mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000001", ownerID).Return(account, nil)
		mockAccountRepo.On("Persist", ctx, account).Return(nil)
		mockTxRepo.On("Append", ctx, mock.AnythingOfType("*models.Transaction")).Return(boom)

		_, err := service.performWithdraw(ctx, mockAccountRepo, mockTxRepo, ownerID, WithdrawRequest{
			AccountNumber: "20000001",
			Amount:        amount("1"),
		})

		assert.ErrorIs(t, err, boom)
	})
}

func TestLedgerService_PerformTransfer(t *testing.T) {
	ownerID := uuid.New()
	otherOwner := uuid.New()

	t.Run("successful transfer to another owner", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)
		ctx := context.Background()

		from := testAccount("20000009", ownerID, models.AccountTypeSavings, "500.00")
		to := testAccount("10000001", otherOwner, models.AccountTypeChecking, "50.00")

		mock.InOrder(
			mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", uuid.Nil).Return(to, nil),
			mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000009", uuid.Nil).Return(from, nil),
		)
		mock.InOrder(
			mockAccountRepo.On("Persist", ctx, to).Return(nil),
			mockAccountRepo.On("Persist", ctx, from).Return(nil),
		)
		mockTxRepo.On("Append", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		result, err := service.performTransfer(ctx, mockAccountRepo, mockTxRepo, ownerID, TransferRequest{
			FromAccountNumber: "20000009",
			ToAccountNumber:   "10000001",
			Amount:            amount("200.00"),
		})

		require.NoError(t, err)
		assert.True(t, amount("300").Equal(result.FromAccount.Balance))
		assert.True(t, amount("250").Equal(to.Balance))
		assert.Equal(t, models.AccountSummary{AccountNumber: "10000001", Type: models.AccountTypeChecking}, result.ToAccount)

		txn := result.Transaction
		assert.Equal(t, models.TransactionTypeTransfer, txn.Type)
		assert.Equal(t, "20000009", *txn.FromAccount)
		assert.Equal(t, "10000001", *txn.ToAccount)
		assert.Equal(t, "Transfer to 10000001", txn.Description)
	})

	t.Run("same account", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := newTestLedger(nil, nil)

		_, err := service.performTransfer(context.Background(), mockAccountRepo, mockTxRepo, ownerID, TransferRequest{
			FromAccountNumber: "10000001",
			ToAccountNumber:   "10000001",
			Amount:            amount("1"),
		})

		requireCode(t, err, ErrCodeInvalidRequest)
	})

	tests := []struct {
		name      string
		from      *models.Account
		to        *models.Account
		amount    string
		wantCode  string
		wantInMsg string
	}{
		{
			name:      "source owned by someone else",
			from:      testAccount("10000001", otherOwner, models.AccountTypeChecking, "100"),
			to:        testAccount("20000002", ownerID, models.AccountTypeSavings, "0"),
			amount:    "10",
			wantCode:  ErrCodeAccountNotFound,
			wantInMsg: "10000001",
		},
		{
			name:      "source missing",
			from:      nil,
			to:        testAccount("20000002", ownerID, models.AccountTypeSavings, "0"),
			amount:    "10",
			wantCode:  ErrCodeAccountNotFound,
			wantInMsg: "10000001",
		},
		{
			name:      "destination missing",
			from:      testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			to:        nil,
			amount:    "10",
			wantCode:  ErrCodeAccountNotFound,
			wantInMsg: "20000002",
		},
		{
			name: "destination closed",
			from: testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			to: func() *models.Account {
				a := testAccount("20000002", otherOwner, models.AccountTypeSavings, "0")
				a.Status = models.AccountStatusClosed
				return a
			}(),
			amount:    "10",
			wantCode:  ErrCodeAccountInactive,
			wantInMsg: "closed",
		},
		{
			name: "currency mismatch",
			from: testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			to: func() *models.Account {
				a := testAccount("20000002", otherOwner, models.AccountTypeSavings, "0")
				a.Currency = models.CurrencyEUR
				return a
			}(),
			amount:    "10",
			wantCode:  ErrCodeCurrencyMismatch,
			wantInMsg: "EUR",
		},
		{
			name:     "amount over precision",
			from:     testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			to:       testAccount("20000002", otherOwner, models.AccountTypeSavings, "0"),
			amount:   "0.005",
			wantCode: ErrCodeInvalidAmount,
		},
		{
			name:     "insufficient funds",
			from:     testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			to:       testAccount("20000002", otherOwner, models.AccountTypeSavings, "0"),
			amount:   "100.01",
			wantCode: ErrCodeInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAccountRepo := mocks.NewMockAccountRepository(t)
			mockTxRepo := mocks.NewMockTransactionRepository(t)
			service := newTestLedger(nil, nil)
			ctx := context.Background()

			if tt.from != nil {
				mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", uuid.Nil).Return(tt.from, nil)
			} else {
				mockAccountRepo.On("FindByNumberForUpdate", ctx, "10000001", uuid.Nil).Return(nil, models.ErrNotFound)
			}
			if tt.to != nil {
				mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000002", uuid.Nil).Return(tt.to, nil)
			} else {
				mockAccountRepo.On("FindByNumberForUpdate", ctx, "20000002", uuid.Nil).Return(nil, models.ErrNotFound)
			}

			_, err := service.performTransfer(ctx, mockAccountRepo, mockTxRepo, ownerID, TransferRequest{
				FromAccountNumber: "10000001",
				ToAccountNumber:   "20000002",
				Amount:            amount(tt.amount),
			})

			svcErr := requireCode(t, err, tt.wantCode)
			if tt.wantInMsg != "" {
				assert.Contains(t, svcErr.Message, tt.wantInMsg)
			}
			if tt.from != nil {
				assert.True(t, amount("100").Equal(tt.from.Balance), "source balance must be untouched")
			}
		})
	}
}

type stubLocker struct {
	err      error
	acquired [][]string
	released int
}

func (l *stubLocker) Acquire(_ context.Context, keys ...string) (lock.Release, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.acquired = append(l.acquired, keys)
	return func() { l.released++ }, nil
}

type blockingLocker struct{}

func (blockingLocker) Acquire(ctx context.Context, _ ...string) (lock.Release, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type recordingPublisher struct {
	err    error
	events []events.TransactionEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event events.TransactionEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestLedgerService_Deposit(t *testing.T) {
	ownerID := uuid.New()

	t.Run("takes the account lock and publishes after commit", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		locker := &stubLocker{}
		publisher := &recordingPublisher{}
		service := newTestLedger(store, locker)
		service.publisher = publisher

		result, err := service.Deposit(context.Background(), ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("5"),
		})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"10000001"}}, locker.acquired)
		assert.Equal(t, 1, locker.released)
		assert.Equal(t, "15", store.balance("10000001"))
		assert.Equal(t, int64(2), store.account("10000001").Version)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, result.Transaction.TransactionID, publisher.events[0].TransactionID)
		assert.Equal(t, "15.00", publisher.events[0].Balances["10000001"])
	})

	t.Run("publish failure does not fail the deposit", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		service := newTestLedger(store, &stubLocker{})
		service.publisher = &recordingPublisher{err: errors.New("broker down")}

		_, err := service.Deposit(context.Background(), ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("5"),
		})

		require.NoError(t, err)
		assert.Equal(t, "15", store.balance("10000001"))
	})

	t.Run("missing account number is an invalid request", func(t *testing.T) {
		locker := &stubLocker{}
		service := newTestLedger(newMemStore(), locker)

		_, err := service.Deposit(context.Background(), ownerID, DepositRequest{Amount: amount("5")})

		requireCode(t, err, ErrCodeInvalidRequest)
		assert.Empty(t, locker.acquired)
	})

	t.Run("amount beyond storage is an invalid amount", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Deposit(context.Background(), ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("100000000000000000000.00"),
		})

		requireCode(t, err, ErrCodeInvalidAmount)
		assert.Equal(t, "10", store.balance("10000001"))
		assert.Empty(t, store.transactions())
	})

	t.Run("balance beyond storage is an invalid amount", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "9999999999999999"))
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Deposit(context.Background(), ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("1"),
		})

		svcErr := requireCode(t, err, ErrCodeInvalidAmount)
		assert.ErrorIs(t, svcErr, models.ErrAmountOutOfRange)
		assert.Equal(t, "9999999999999999", store.balance("10000001"))
		assert.Empty(t, store.transactions())
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		service := newTestLedger(newMemStore(), &stubLocker{})

		_, err := service.Deposit(context.Background(), uuid.Nil, DepositRequest{AccountNumber: "10000001", Amount: amount("5")})

		requireCode(t, err, ErrCodeInvalidRequest)
	})
}

func TestLedgerService_FailureClassification(t *testing.T) {
	ownerID := uuid.New()
	withdraw := WithdrawRequest{AccountNumber: "10000001", Amount: amount("5")}

	t.Run("lock wait exhausted is a retryable timeout", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		service := newTestLedger(store, &stubLocker{err: lock.ErrLockTimeout})

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		svcErr := requireCode(t, err, ErrCodeTimeout)
		assert.True(t, svcErr.Retryable())
		assert.Equal(t, "10", store.balance("10000001"))
	})

	t.Run("operation deadline is a retryable timeout", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		service := newTestLedger(store, blockingLocker{})
		service.timeout = 20 * time.Millisecond

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		svcErr := requireCode(t, err, ErrCodeTimeout)
		assert.True(t, svcErr.Retryable())
		assert.Empty(t, store.transactions())
	})

	t.Run("version mismatch at commit is a retryable conflict", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		store.beforeCommit = func(s *memStore) {
			s.accounts["10000001"].Version++
		}
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		svcErr := requireCode(t, err, ErrCodeConflict)
		assert.True(t, svcErr.Retryable())
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Equal(t, "10", store.balance("10000001"))
	})

	t.Run("duplicate transaction id is a conflict", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		store.failAppend = models.ErrDuplicateTransaction
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		requireCode(t, err, ErrCodeConflict)
		assert.Equal(t, "10", store.balance("10000001"))
	})

	t.Run("failed append leaves the balance untouched", func(t *testing.T) {
		store := newMemStore(
			testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			testAccount("20000002", uuid.New(), models.AccountTypeSavings, "0"),
		)
		store.failAppend = errors.New("log unavailable")
		locker := &stubLocker{}
		service := newTestLedger(store, locker)

		_, err := service.Transfer(context.Background(), ownerID, TransferRequest{
			FromAccountNumber: "10000001",
			ToAccountNumber:   "20000002",
			Amount:            amount("60"),
		})

		svcErr := requireCode(t, err, ErrCodeInternalError)
		assert.False(t, svcErr.Retryable())
		assert.Equal(t, "internal error", svcErr.Message)
		assert.Equal(t, "100", store.balance("10000001"))
		assert.Equal(t, "0", store.balance("20000002"))
		assert.Empty(t, store.transactions())
		assert.Equal(t, 1, locker.released)
	})

	t.Run("storage overflow is an invalid amount", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "10"))
		store.failAppend = fmt.Errorf("failed to append transaction: %w", models.ErrAmountOutOfRange)
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		svcErr := requireCode(t, err, ErrCodeInvalidAmount)
		assert.False(t, svcErr.Retryable())
		assert.Equal(t, "10", store.balance("10000001"))
	})

	t.Run("transfer into a full account mutates neither", func(t *testing.T) {
		store := newMemStore(
			testAccount("10000001", ownerID, models.AccountTypeChecking, "100"),
			testAccount("20000002", uuid.New(), models.AccountTypeSavings, "9999999999999950"),
		)
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Transfer(context.Background(), ownerID, TransferRequest{
			FromAccountNumber: "10000001",
			ToAccountNumber:   "20000002",
			Amount:            amount("60"),
		})

		requireCode(t, err, ErrCodeInvalidAmount)
		assert.Equal(t, "100", store.balance("10000001"))
		assert.Equal(t, "9999999999999950", store.balance("20000002"))
		assert.Empty(t, store.transactions())
	})

	t.Run("business rejection keeps its code", func(t *testing.T) {
		store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "1"))
		service := newTestLedger(store, &stubLocker{})

		_, err := service.Withdraw(context.Background(), ownerID, withdraw)

		svcErr := requireCode(t, err, ErrCodeInsufficientFunds)
		assert.False(t, svcErr.Retryable())
	})
}
