package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testOwner = uuid.MustParse("0b8f2f5e-6d4b-4a51-8f0e-2b7c9d1e3a4f")
	testTime  = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type testHandler struct {
	*Handler
	ledger   *mocks.MockLedger
	accounts *mocks.MockAccountManager
	history  *mocks.MockHistoryReader
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ledger := mocks.NewMockLedger(t)
	accounts := mocks.NewMockAccountManager(t)
	history := mocks.NewMockHistoryReader(t)
	healthy := pingFunc(func(context.Context) error { return nil })

	return &testHandler{
		Handler:  NewHandler(ledger, accounts, history, healthy, testLogger()),
		ledger:   ledger,
		accounts: accounts,
		history:  history,
	}
}

func (h *testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func ownedRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", testOwner.String())
	return req
}

func testAccount(number string, balance string) *models.Account {
	return &models.Account{
		ID:             uuid.New(),
		AccountNumber:  number,
		OwnerID:        testOwner,
		Type:           models.AccountTypeChecking,
		Currency:       models.CurrencyUSD,
		Status:         models.AccountStatusActive,
		Balance:        decimal.RequireFromString(balance),
		OverdraftLimit: decimal.Zero,
		Version:        2,
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
		LastActivityAt: testTime,
	}
}

func testTransaction(txnType models.TransactionType, from, to *string, amount string) *models.Transaction {
	completed := testTime
	return &models.Transaction{
		ID:            uuid.New(),
		TransactionID: "TXN1709294400000ABC123",
		Type:          txnType,
		Status:        models.TransactionStatusCompleted,
		FromAccount:   from,
		ToAccount:     to,
		Amount:        decimal.RequireFromString(amount),
		Currency:      models.CurrencyUSD,
		Category:      models.CategoryOther,
		Description:   "test",
		CreatedAt:     testTime,
		CompletedAt:   &completed,
	}
}

func ptr(s string) *string { return &s }

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
