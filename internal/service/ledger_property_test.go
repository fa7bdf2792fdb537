package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/benx421/personal-bank/internal/lock"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockedLedger(store *memStore) *LedgerService {
	return newTestLedger(store, lock.NewLocalLocker(5*time.Second))
}

func TestLedger_BalanceNeverCrossesOverdraftFloor(t *testing.T) {
	ownerID := uuid.New()
	checking := testAccount("10000001", ownerID, models.AccountTypeChecking, "20.00")
	checking.OverdraftLimit = amount("50.00")
	savings := testAccount("20000001", ownerID, models.AccountTypeSavings, "20.00")

	store := newMemStore(checking, savings)
	service := newLockedLedger(store)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	numbers := []string{"10000001", "20000001"}
	for i := 0; i < 500; i++ {
		value := decimal.New(int64(rng.Intn(5000)+1), -2)
		number := numbers[rng.Intn(2)]

		var err error
		switch rng.Intn(3) {
		case 0:
			_, err = service.Deposit(ctx, ownerID, DepositRequest{AccountNumber: number, Amount: value})
		case 1:
			_, err = service.Withdraw(ctx, ownerID, WithdrawRequest{AccountNumber: number, Amount: value})
		default:
			other := numbers[0]
			if number == other {
				other = numbers[1]
			}
			_, err = service.Transfer(ctx, ownerID, TransferRequest{FromAccountNumber: number, ToAccountNumber: other, Amount: value})
		}
		if err != nil {
			requireCode(t, err, ErrCodeInsufficientFunds)
		}

		for _, n := range numbers {
			account := store.account(n)
			require.False(t, account.Balance.LessThan(account.OverdraftLimit.Neg()),
				"account %s balance %s below floor after op %d", n, account.Balance, i)
		}
	}
}

func TestLedger_DepositThenWithdrawRestoresBalance(t *testing.T) {
	ownerID := uuid.New()
	amounts := []string{"0.01", "1", "19.99", "250.50", "1000000.00"}

	for _, value := range amounts {
		t.Run(value, func(t *testing.T) {
			store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "123.45"))
			service := newLockedLedger(store)
			ctx := context.Background()

			_, err := service.Deposit(ctx, ownerID, DepositRequest{AccountNumber: "10000001", Amount: amount(value)})
			require.NoError(t, err)
			_, err = service.Withdraw(ctx, ownerID, WithdrawRequest{AccountNumber: "10000001", Amount: amount(value)})
			require.NoError(t, err)

			assert.True(t, amount("123.45").Equal(store.account("10000001").Balance))
			assert.Len(t, store.transactions(), 2)
		})
	}
}

func TestLedger_TransferConservesTotal(t *testing.T) {
	ownerID := uuid.New()
	store := newMemStore(
		testAccount("10000001", ownerID, models.AccountTypeChecking, "500.00"),
		testAccount("20000001", uuid.New(), models.AccountTypeSavings, "50.00"),
	)
	service := newLockedLedger(store)

	result, err := service.Transfer(context.Background(), ownerID, TransferRequest{
		FromAccountNumber: "10000001",
		ToAccountNumber:   "20000001",
		Amount:            amount("200.00"),
	})
	require.NoError(t, err)

	from := store.account("10000001")
	to := store.account("20000001")
	assert.True(t, amount("300.00").Equal(from.Balance))
	assert.True(t, amount("250.00").Equal(to.Balance))
	assert.True(t, amount("550.00").Equal(from.Balance.Add(to.Balance)))

	txns := store.transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, models.TransactionStatusCompleted, txns[0].Status)
	assert.True(t, txns[0].References("10000001"))
	assert.True(t, txns[0].References("20000001"))
	assert.Equal(t, result.Transaction.TransactionID, txns[0].TransactionID)
	assert.Equal(t, models.AccountTypeSavings, result.ToAccount.Type)
}

func TestLedger_ConcurrentWithdrawalsSerialize(t *testing.T) {
	ownerID := uuid.New()
	store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeSavings, "100.00"))
	service := newLockedLedger(store)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := service.Withdraw(context.Background(), ownerID, WithdrawRequest{
				AccountNumber: "10000001",
				Amount:        amount("60.00"),
			})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			var svcErr *ServiceError
			if errors.As(err, &svcErr) && svcErr.Code == ErrCodeInsufficientFunds {
				rejected++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	assert.True(t, amount("40.00").Equal(store.account("10000001").Balance))
	assert.Len(t, store.transactions(), 1)
}

func TestLedger_OppositeTransfersDoNotDeadlock(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	store := newMemStore(
		testAccount("10000001", alice, models.AccountTypeChecking, "1000.00"),
		testAccount("10000002", bob, models.AccountTypeChecking, "1000.00"),
	)
	service := newLockedLedger(store)

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := service.Transfer(context.Background(), alice, TransferRequest{
				FromAccountNumber: "10000001", ToAccountNumber: "10000002", Amount: amount("3.00"),
			})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := service.Transfer(context.Background(), bob, TransferRequest{
				FromAccountNumber: "10000002", ToAccountNumber: "10000001", Amount: amount("1.00"),
			})
			errs <- err
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("opposite transfers deadlocked")
	}
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	a := store.account("10000001").Balance
	b := store.account("10000002").Balance
	assert.True(t, amount("900.00").Equal(a), "got %s", a)
	assert.True(t, amount("1100.00").Equal(b), "got %s", b)
	assert.Len(t, store.transactions(), 100)
}

func TestLedger_CurrencyMismatchMutatesNeither(t *testing.T) {
	ownerID := uuid.New()
	eur := testAccount("20000001", uuid.New(), models.AccountTypeSavings, "10.00")
	eur.Currency = models.CurrencyEUR
	store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "100.00"), eur)
	service := newLockedLedger(store)

	_, err := service.Transfer(context.Background(), ownerID, TransferRequest{
		FromAccountNumber: "10000001",
		ToAccountNumber:   "20000001",
		Amount:            amount("5.00"),
	})

	requireCode(t, err, ErrCodeCurrencyMismatch)
	assert.True(t, amount("100.00").Equal(store.account("10000001").Balance))
	assert.True(t, amount("10.00").Equal(store.account("20000001").Balance))
	assert.Equal(t, int64(1), store.account("10000001").Version)
	assert.Empty(t, store.transactions())
}

func TestLedger_OverdrawnWithdrawalLeavesBalance(t *testing.T) {
	ownerID := uuid.New()
	store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "100.00"))
	service := newLockedLedger(store)

	_, err := service.Withdraw(context.Background(), ownerID, WithdrawRequest{
		AccountNumber: "10000001",
		Amount:        amount("150.00"),
	})

	requireCode(t, err, ErrCodeInsufficientFunds)
	assert.True(t, amount("100.00").Equal(store.account("10000001").Balance))
	assert.Empty(t, store.transactions())
}

func TestLedger_TenDimesMakeExactlyOneDollar(t *testing.T) {
	ownerID := uuid.New()
	store := newMemStore(testAccount("10000001", ownerID, models.AccountTypeChecking, "0.00"))
	service := newLockedLedger(store)

	for i := 0; i < 10; i++ {
		_, err := service.Deposit(context.Background(), ownerID, DepositRequest{
			AccountNumber: "10000001",
			Amount:        amount("0.10"),
		})
		require.NoError(t, err)
	}

	balance := store.account("10000001").Balance
	assert.True(t, amount("1.00").Equal(balance), "got %s", balance)
	assert.Equal(t, "1.00", models.CurrencyUSD.Format(balance))
	assert.Len(t, store.transactions(), 10)
}
