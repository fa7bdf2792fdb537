package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/google/uuid"
)

// TransactionView is a transaction with the public view of each account it
// references. The summaries are resolved at read time and never stored.
type TransactionView struct {
	Transaction *models.Transaction
	From        *models.AccountSummary
	To          *models.AccountSummary
}

// HistoryPage is one page of transaction views, newest first
type HistoryPage struct {
	Transactions []TransactionView
	Total        int64
	Page         int
	Limit        int
	Pages        int
}

// HistoryService reads the transaction log on behalf of an owner
type HistoryService struct {
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

// NewHistoryService creates a new HistoryService over the store's readers
func NewHistoryService(store repository.Store, logger *slog.Logger) *HistoryService {
	return &HistoryService{
		accounts:     store.Accounts(),
		transactions: store.Transactions(),
		logger:       logger,
	}
}

// List returns transactions touching any account owned by ownerID
func (s *HistoryService) List(ctx context.Context, ownerID uuid.UUID, filter HistoryFilter, page models.Page) (*HistoryPage, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	owned, err := s.accounts.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.internal("failed to list owner accounts", err)
	}

	page = page.Normalize()
	if len(owned) == 0 {
		return &HistoryPage{Transactions: []TransactionView{}, Page: page.Number, Limit: page.Limit}, nil
	}

	numbers := make([]string, 0, len(owned))
	for _, account := range owned {
		numbers = append(numbers, account.AccountNumber)
	}

	return s.find(ctx, models.TransactionFilter{
		AccountNumbers: numbers,
		Type:           filter.Type,
		Status:         filter.Status,
		Category:       filter.Category,
	}, page)
}

// ListForAccount returns transactions of one account owned by ownerID
func (s *HistoryService) ListForAccount(ctx context.Context, ownerID uuid.UUID, accountNumber string, page models.Page) (*HistoryPage, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	if _, err := s.accounts.FindByNumber(ctx, accountNumber, ownerID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, accountNotFound(accountNumber)
		}
		return nil, s.internal("failed to get account", err)
	}

	return s.find(ctx, models.TransactionFilter{AccountNumbers: []string{accountNumber}}, page.Normalize())
}

// Get returns a transaction that references at least one account owned by ownerID
func (s *HistoryService) Get(ctx context.Context, ownerID uuid.UUID, transactionID string) (*TransactionView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	notFound := &ServiceError{
		Code:    ErrCodeTransactionNotFound,
		Message: "transaction not found",
	}

	txn, err := s.transactions.FindByID(ctx, transactionID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, s.internal("failed to get transaction", err)
	}

	summaries, err := s.summaries(ctx, []*models.Transaction{txn})
	if err != nil {
		return nil, err
	}

	visible := false
	for _, number := range txn.AccountNumbers() {
		if account, ok := summaries[number]; ok && account.OwnerID == ownerID {
			visible = true
			break
		}
	}
	if !visible {
		return nil, notFound
	}

	view := project(txn, summaries)
	return &view, nil
}

func (s *HistoryService) find(ctx context.Context, filter models.TransactionFilter, page models.Page) (*HistoryPage, error) {
	result, err := s.transactions.Find(ctx, filter, page)
	if err != nil {
		return nil, s.internal("failed to list transactions", err)
	}

	summaries, err := s.summaries(ctx, result.Transactions)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(result.Transactions))
	for _, txn := range result.Transactions {
		views = append(views, project(txn, summaries))
	}

	return &HistoryPage{
		Transactions: views,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		Pages:        result.Pages(),
	}, nil
}

// summaries loads every account referenced by txns in one query
func (s *HistoryService) summaries(ctx context.Context, txns []*models.Transaction) (map[string]*models.Account, error) {
	seen := make(map[string]struct{})
	var numbers []string
	for _, txn := range txns {
		for _, number := range txn.AccountNumbers() {
			if _, ok := seen[number]; ok {
				continue
			}
			seen[number] = struct{}{}
			numbers = append(numbers, number)
		}
	}

	accounts, err := s.accounts.FindByNumbers(ctx, numbers)
	if err != nil {
		return nil, s.internal("failed to load referenced accounts", err)
	}

	byNumber := make(map[string]*models.Account, len(accounts))
	for _, account := range accounts {
		byNumber[account.AccountNumber] = account
	}
	return byNumber, nil
}

func (s *HistoryService) internal(msg string, err error) error {
	s.logger.Error(msg, "error", err)
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "internal error",
		Err:     err,
	}
}

func project(txn *models.Transaction, accounts map[string]*models.Account) TransactionView {
	view := TransactionView{Transaction: txn}
	if txn.FromAccount != nil {
		view.From = summaryOf(*txn.FromAccount, accounts)
	}
	if txn.ToAccount != nil {
		view.To = summaryOf(*txn.ToAccount, accounts)
	}
	return view
}

func summaryOf(accountNumber string, accounts map[string]*models.Account) *models.AccountSummary {
	if account, ok := accounts[accountNumber]; ok {
		summary := account.Summary()
		return &summary
	}
	return &models.AccountSummary{AccountNumber: accountNumber}
}
