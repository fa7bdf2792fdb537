package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/personal-bank/internal/db"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		_ = sqlDB.Close() //nolint:errcheck // test cleanup
	})

	return db.NewTestDB(sqlDB), mock
}

var accountRowColumns = []string{
	"id", "account_number", "owner_id", "account_type", "currency", "balance", "overdraft_limit",
	"status", "version", "created_at", "updated_at", "last_activity_at",
}

var transactionRowColumns = []string{
	"seq", "id", "transaction_id", "type", "amount", "currency", "from_account", "to_account", "status",
	"description", "category", "metadata", "failure_reason", "created_at", "processed_at", "completed_at", "failed_at",
}
