package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_FindByNumber(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		setupMock   func(mock sqlmock.Sqlmock)
		wantErr     error
		wantBalance string
	}{
		{
			name:    "found for owner",
			ownerID: ownerID,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accountRowColumns).
					AddRow(uuid.New().String(), "1234567", ownerID.String(), "checking", "USD", "150.25", "100.00",
						"active", int64(3), now, now, now)
				mock.ExpectQuery("SELECT (.+) FROM accounts").
					WithArgs("1234567", ownerFilter(ownerID)).
					WillReturnRows(rows)
			},
			wantBalance: "150.25",
		},
		{
			name:    "any owner",
			ownerID: uuid.Nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accountRowColumns).
					AddRow(uuid.New().String(), "1234567", ownerID.String(), "savings", "EUR", "10", "0",
						"active", int64(1), now, now, now)
				mock.ExpectQuery("SELECT (.+) FROM accounts").
					WithArgs("1234567", nil).
					WillReturnRows(rows)
			},
			wantBalance: "10",
		},
		{
			name:    "not found",
			ownerID: ownerID,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM accounts").
					WithArgs("1234567", ownerFilter(ownerID)).
					WillReturnRows(sqlmock.NewRows(accountRowColumns))
			},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDB(t)
			tt.setupMock(mock)

			repo := NewAccountRepository(database)
			account, err := repo.FindByNumber(context.Background(), "1234567", tt.ownerID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "1234567", account.AccountNumber)
				assert.True(t, decimal.RequireFromString(tt.wantBalance).Equal(account.Balance))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_FindByNumberForUpdate(t *testing.T) {
	t.Run("locks the row", func(t *testing.T) {
		database, mock := newMockDB(t)
		now := time.Now()
		ownerID := uuid.New()

		rows := sqlmock.NewRows(accountRowColumns).
			AddRow(uuid.New().String(), "2000001", ownerID.String(), "savings", "USD", "5.00", "0",
				"active", int64(2), now, now, now)
		mock.ExpectQuery("SELECT (.+) FROM accounts (.+) FOR UPDATE").
			WithArgs("2000001", nil).
			WillReturnRows(rows)

		account, err := NewAccountRepository(database).FindByNumberForUpdate(context.Background(), "2000001", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, models.AccountTypeSavings, account.Type)
		assert.Equal(t, int64(2), account.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock timeout is a conflict", func(t *testing.T) {
		database, mock := newMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM accounts (.+) FOR UPDATE").
			WillReturnError(&pq.Error{Code: pqLockNotAvailable, Message: "could not obtain lock"})

		_, err := NewAccountRepository(database).FindByNumberForUpdate(context.Background(), "2000001", uuid.Nil)
		assert.ErrorIs(t, err, models.ErrConflict)
	})
}

func TestAccountRepository_FindByNumbers(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		database, mock := newMockDB(t)

		accounts, err := NewAccountRepository(database).FindByNumbers(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, accounts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns matching accounts", func(t *testing.T) {
		database, mock := newMockDB(t)
		now := time.Now()
		numbers := []string{"1000001", "2000002"}

		rows := sqlmock.NewRows(accountRowColumns).
			AddRow(uuid.New().String(), "1000001", uuid.New().String(), "checking", "USD", "1", "0", "active", int64(1), now, now, now).
			AddRow(uuid.New().String(), "2000002", uuid.New().String(), "savings", "USD", "2", "0", "active", int64(1), now, now, now)
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE account_number = ANY").
			WithArgs(pq.Array(numbers)).
			WillReturnRows(rows)

		accounts, err := NewAccountRepository(database).FindByNumbers(context.Background(), numbers)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "2000002", accounts[1].AccountNumber)
	})
}

func TestAccountRepository_Create(t *testing.T) {
	newAccount := func(t *testing.T) *models.Account {
		account, err := models.NewAccount("1234567", uuid.New(), models.AccountTypeChecking, models.CurrencyUSD,
			decimal.NewFromInt(50), decimal.Zero, time.Now())
		require.NoError(t, err)
		return account
	}

	t.Run("inserts account", func(t *testing.T) {
		database, mock := newMockDB(t)
		account := newAccount(t)

		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.AccountNumber, account.OwnerID, "checking", "USD", account.Balance,
				account.OverdraftLimit, "active", int64(1), account.CreatedAt, account.UpdatedAt, account.LastActivityAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewAccountRepository(database).Create(context.Background(), account)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate account number", func(t *testing.T) {
		database, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO accounts").
			WillReturnError(&pq.Error{Code: pqUniqueViolation})

		err := NewAccountRepository(database).Create(context.Background(), newAccount(t))
		assert.ErrorIs(t, err, models.ErrDuplicateAccountNumber)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		database, mock := newMockDB(t)
		boom := errors.New("connection reset")

		mock.ExpectExec("INSERT INTO accounts").WillReturnError(boom)

		err := NewAccountRepository(database).Create(context.Background(), newAccount(t))
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, models.ErrDuplicateAccountNumber)
	})
}

func TestAccountRepository_Persist(t *testing.T) {
	now := time.Now()

	t.Run("advances version", func(t *testing.T) {
		database, mock := newMockDB(t)
		account := &models.Account{
			AccountNumber:  "1234567",
			Balance:        decimal.RequireFromString("75.50"),
			Status:         models.AccountStatusActive,
			Version:        4,
			UpdatedAt:      now,
			LastActivityAt: now,
		}

		mock.ExpectExec("UPDATE accounts").
			WithArgs("1234567", int64(4), account.Balance, "active", now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewAccountRepository(database).Persist(context.Background(), account)
		require.NoError(t, err)
		assert.Equal(t, int64(5), account.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		database, mock := newMockDB(t)
		account := &models.Account{AccountNumber: "1234567", Version: 4, UpdatedAt: now, LastActivityAt: now}

		mock.ExpectExec("UPDATE accounts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAccountRepository(database).Persist(context.Background(), account)
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Equal(t, int64(4), account.Version)
	})

	t.Run("serialization failure is a conflict", func(t *testing.T) {
		database, mock := newMockDB(t)
		account := &models.Account{AccountNumber: "1234567", Version: 1, UpdatedAt: now, LastActivityAt: now}

		mock.ExpectExec("UPDATE accounts").
			WillReturnError(&pq.Error{Code: pqSerializationFailure})

		err := NewAccountRepository(database).Persist(context.Background(), account)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("numeric overflow is out of range", func(t *testing.T) {
		database, mock := newMockDB(t)
		account := &models.Account{AccountNumber: "1234567", Version: 1, UpdatedAt: now, LastActivityAt: now}

		mock.ExpectExec("UPDATE accounts").
			WillReturnError(&pq.Error{Code: pqNumericOutOfRange, Message: "numeric field overflow"})

		err := NewAccountRepository(database).Persist(context.Background(), account)
		assert.ErrorIs(t, err, models.ErrAmountOutOfRange)
		assert.Equal(t, int64(1), account.Version)
	})
}
