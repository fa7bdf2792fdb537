// Package events publishes completed ledger transactions to downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/benx421/personal-bank/internal/models"
)

// TransactionEvent is the payload published after a ledger operation commits
type TransactionEvent struct {
	OccurredAt    time.Time         `json:"occurredAt"`
	FromAccount   *string           `json:"fromAccount,omitempty"`
	ToAccount     *string           `json:"toAccount,omitempty"`
	TransactionID string            `json:"transactionId"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	Category      string            `json:"category"`
	OwnerID       string            `json:"ownerId"`
	Balances      map[string]string `json:"balances,omitempty"`
}

// NewTransactionEvent builds the event for txn. Balances holds the post-commit
// balance of every account the operation touched and that the owner may see.
func NewTransactionEvent(txn *models.Transaction, ownerID string, accounts ...*models.Account) TransactionEvent {
	event := TransactionEvent{
		OccurredAt:    txn.CreatedAt,
		FromAccount:   txn.FromAccount,
		ToAccount:     txn.ToAccount,
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		Amount:        txn.Currency.Format(txn.Amount),
		Currency:      string(txn.Currency),
		Category:      string(txn.Category),
		OwnerID:       ownerID,
	}
	if txn.CompletedAt != nil {
		event.OccurredAt = *txn.CompletedAt
	}

	if len(accounts) > 0 {
		event.Balances = make(map[string]string, len(accounts))
		for _, account := range accounts {
			event.Balances[account.AccountNumber] = account.Currency.Format(account.Balance)
		}
	}

	return event
}

// Publisher delivers transaction events
type Publisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

// Publish discards the event
func (NoopPublisher) Publish(context.Context, TransactionEvent) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
