package handlers

import (
	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service"
)

func toAccount(a *models.Account) api.Account {
	return api.Account{
		AccountNumber:    a.AccountNumber,
		AccountType:      api.AccountType(a.Type),
		Currency:         api.Currency(a.Currency),
		Status:           api.AccountStatus(a.Status),
		Balance:          a.Currency.Format(a.Balance),
		OverdraftLimit:   a.Currency.Format(a.OverdraftLimit),
		AvailableBalance: a.Currency.Format(a.Available()),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		LastActivityAt:   a.LastActivityAt,
	}
}

func toAccountSummary(s models.AccountSummary) api.AccountSummary {
	summary := api.AccountSummary{AccountNumber: s.AccountNumber}
	if s.Type != "" {
		accountType := api.AccountType(s.Type)
		summary.AccountType = &accountType
	}
	return summary
}

// toTransaction renders txn with the given account views. A side the
// transaction references but has no view for falls back to the bare number.
func toTransaction(txn *models.Transaction, from, to *models.AccountSummary) api.Transaction {
	resp := api.Transaction{
		TransactionId: txn.TransactionID,
		Type:          api.TransactionType(txn.Type),
		Status:        api.TransactionStatus(txn.Status),
		Amount:        txn.Currency.Format(txn.Amount),
		Currency:      api.Currency(txn.Currency),
		Category:      api.Category(txn.Category),
		Description:   optionalString(txn.Description),
		FailureReason: optionalString(txn.FailureReason),
		CreatedAt:     txn.CreatedAt,
		CompletedAt:   txn.CompletedAt,
	}
	resp.FromAccount = side(txn.FromAccount, from)
	resp.ToAccount = side(txn.ToAccount, to)
	return resp
}

func side(number *string, view *models.AccountSummary) *api.AccountSummary {
	if number == nil {
		return nil
	}
	if view != nil {
		s := toAccountSummary(*view)
		return &s
	}
	return &api.AccountSummary{AccountNumber: *number}
}

func toTransactionPage(page *service.HistoryPage) api.TransactionPage {
	views := make([]api.Transaction, 0, len(page.Transactions))
	for _, v := range page.Transactions {
		views = append(views, toTransaction(v.Transaction, v.From, v.To))
	}
	return api.TransactionPage{
		Transactions: views,
		Pagination: api.Pagination{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: page.Pages,
		},
	}
}

func summaryPtr(a *models.Account) *models.AccountSummary {
	if a == nil {
		return nil
	}
	s := a.Summary()
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
