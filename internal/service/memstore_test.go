package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/google/uuid"
)

// memStore is an in-memory repository.Store with the same visibility rules
// as the Postgres one: writes staged inside WithinTx are published only on
// commit, and persisted accounts are version-checked at commit time.
type memStore struct {
	accounts     map[string]*models.Account
	beforeCommit func(s *memStore)
	failAppend   error
	txns         []*models.Transaction
	seq          int64
	mu           sync.Mutex
}

func newMemStore(accounts ...*models.Account) *memStore {
	s := &memStore{accounts: make(map[string]*models.Account)}
	for _, account := range accounts {
		s.accounts[account.AccountNumber] = cloneAccount(account)
	}
	return s
}

func (s *memStore) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	tx := &memTx{store: s, persisted: make(map[string]stagedAccount)}
	if err := fn(ctx, &memAccounts{store: s, tx: tx}, &memTransactions{store: s, tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.beforeCommit != nil {
		s.beforeCommit(s)
	}
	return s.commit(tx)
}

func (s *memStore) Accounts() repository.AccountRepository {
	return &memAccounts{store: s}
}

func (s *memStore) Transactions() repository.TransactionRepository {
	return &memTransactions{store: s}
}

func (s *memStore) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for number, staged := range tx.persisted {
		current, ok := s.accounts[number]
		if !ok || current.Version != staged.expectedVersion {
			return fmt.Errorf("account %s: %w", number, models.ErrConflict)
		}
	}
	for _, account := range tx.created {
		if _, ok := s.accounts[account.AccountNumber]; ok {
			return fmt.Errorf("account %s: %w", account.AccountNumber, models.ErrDuplicateAccountNumber)
		}
	}
	for _, txn := range tx.appended {
		for _, existing := range s.txns {
			if existing.TransactionID == txn.TransactionID {
				return fmt.Errorf("transaction %s: %w", txn.TransactionID, models.ErrDuplicateTransaction)
			}
		}
	}

	for number, staged := range tx.persisted {
		s.accounts[number] = staged.account
	}
	for _, account := range tx.created {
		s.accounts[account.AccountNumber] = account
	}
	s.txns = append(s.txns, tx.appended...)

	return nil
}

func (s *memStore) balance(accountNumber string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[accountNumber].Balance.String()
}

func (s *memStore) account(accountNumber string) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAccount(s.accounts[accountNumber])
}

func (s *memStore) transactions() []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Transaction(nil), s.txns...)
}

type stagedAccount struct {
	account         *models.Account
	expectedVersion int64
}

type memTx struct {
	store     *memStore
	persisted map[string]stagedAccount
	created   []*models.Account
	appended  []*models.Transaction
}

type memAccounts struct {
	store *memStore
	tx    *memTx
}

func (r *memAccounts) lookup(accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	if r.tx != nil {
		if staged, ok := r.tx.persisted[accountNumber]; ok {
			return cloneAccount(staged.account), nil
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accounts[accountNumber]
	if !ok || (ownerID != uuid.Nil && account.OwnerID != ownerID) {
		return nil, fmt.Errorf("account %s: %w", accountNumber, models.ErrNotFound)
	}
	return cloneAccount(account), nil
}

func (r *memAccounts) FindByNumber(_ context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	return r.lookup(accountNumber, ownerID)
}

func (r *memAccounts) FindByNumberForUpdate(_ context.Context, accountNumber string, ownerID uuid.UUID) (*models.Account, error) {
	return r.lookup(accountNumber, ownerID)
}

func (r *memAccounts) FindByNumbers(_ context.Context, accountNumbers []string) ([]*models.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var accounts []*models.Account
	for _, number := range accountNumbers {
		if account, ok := r.store.accounts[number]; ok {
			accounts = append(accounts, cloneAccount(account))
		}
	}
	return accounts, nil
}

func (r *memAccounts) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var accounts []*models.Account
	for _, account := range r.store.accounts {
		if account.OwnerID == ownerID {
			accounts = append(accounts, cloneAccount(account))
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountNumber < accounts[j].AccountNumber })
	return accounts, nil
}

func (r *memAccounts) Create(_ context.Context, account *models.Account) error {
	r.store.mu.Lock()
	_, exists := r.store.accounts[account.AccountNumber]
	r.store.mu.Unlock()
	if exists {
		return fmt.Errorf("account %s: %w", account.AccountNumber, models.ErrDuplicateAccountNumber)
	}

	r.tx.created = append(r.tx.created, cloneAccount(account))
	return nil
}

func (r *memAccounts) Persist(_ context.Context, account *models.Account) error {
	expected := account.Version
	if staged, ok := r.tx.persisted[account.AccountNumber]; ok {
		expected = staged.expectedVersion
	}

	account.Version++
	r.tx.persisted[account.AccountNumber] = stagedAccount{
		account:         cloneAccount(account),
		expectedVersion: expected,
	}
	return nil
}

type memTransactions struct {
	store *memStore
	tx    *memTx
}

func (r *memTransactions) Append(_ context.Context, txn *models.Transaction) error {
	if r.store.failAppend != nil {
		return r.store.failAppend
	}

	txn.Seq = atomic.AddInt64(&r.store.seq, 1)
	r.tx.appended = append(r.tx.appended, txn)
	return nil
}

func (r *memTransactions) FindByID(_ context.Context, transactionID string) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, txn := range r.store.txns {
		if txn.TransactionID == transactionID {
			return txn, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, models.ErrNotFound)
}

func (r *memTransactions) Find(_ context.Context, filter models.TransactionFilter, page models.Page) (*models.TransactionPage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	page = page.Normalize()
	var matched []*models.Transaction
	for _, txn := range r.store.txns {
		if filter.AccountNumbers != nil && !referencesAny(txn, filter.AccountNumbers) {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if filter.Status != "" && txn.Status != filter.Status {
			continue
		}
		if filter.Category != "" && txn.Category != filter.Category {
			continue
		}
		matched = append(matched, txn)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Seq > matched[j].Seq })

	result := &models.TransactionPage{
		Transactions: []*models.Transaction{},
		Total:        int64(len(matched)),
		Page:         page.Number,
		Limit:        page.Limit,
	}
	start := page.Offset()
	if start < len(matched) {
		end := min(start+page.Limit, len(matched))
		result.Transactions = matched[start:end]
	}
	return result, nil
}

func referencesAny(txn *models.Transaction, accountNumbers []string) bool {
	for _, number := range accountNumbers {
		if txn.References(number) {
			return true
		}
	}
	return false
}

func cloneAccount(account *models.Account) *models.Account {
	if account == nil {
		return nil
	}
	clone := *account
	return &clone
}

// sequenceIDs hands out predictable, unique identifiers
type sequenceIDs struct {
	accountNumbers []string
	next           int64
	mu             sync.Mutex
}

func (g *sequenceIDs) NewTransactionID(time.Time) (string, error) {
	return fmt.Sprintf("TXN-TEST-%05d", atomic.AddInt64(&g.next, 1)), nil
}

func (g *sequenceIDs) NewAccountNumber(accountType models.AccountType) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.accountNumbers) > 0 {
		number := g.accountNumbers[0]
		g.accountNumbers = g.accountNumbers[1:]
		return number, nil
	}
	return fmt.Sprintf("%s%07d", accountType.NumberPrefix(), atomic.AddInt64(&g.next, 1)), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
