package service

import (
	"github.com/benx421/personal-bank/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// DepositRequest credits an account owned by the caller
type DepositRequest struct {
	Metadata      map[string]any  `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber string          `json:"accountNumber"`
	Description   string          `json:"description,omitempty"`
	Category      models.Category `json:"category,omitempty"`
}

// Validate checks the request shape. Amount rules depend on the account's
// currency and are checked once the account is loaded.
func (r DepositRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AccountNumber, validation.Required),
		validation.Field(&r.Description, descriptionRules...),
		validation.Field(&r.Category, validation.By(validCategory)),
	)
}

// WithdrawRequest debits an account owned by the caller
type WithdrawRequest struct {
	Metadata      map[string]any  `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber string          `json:"accountNumber"`
	Description   string          `json:"description,omitempty"`
	Category      models.Category `json:"category,omitempty"`
}

// Validate checks the request shape
func (r WithdrawRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AccountNumber, validation.Required),
		validation.Field(&r.Description, descriptionRules...),
		validation.Field(&r.Category, validation.By(validCategory)),
	)
}

// TransferRequest moves funds from a caller-owned account to any active account
type TransferRequest struct {
	Metadata          map[string]any  `json:"-"`
	Amount            decimal.Decimal `json:"amount"`
	FromAccountNumber string          `json:"fromAccountNumber"`
	ToAccountNumber   string          `json:"toAccountNumber"`
	Description       string          `json:"description,omitempty"`
	Category          models.Category `json:"category,omitempty"`
}

// Validate checks the request shape, including that both sides differ
func (r TransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FromAccountNumber, validation.Required),
		validation.Field(&r.ToAccountNumber,
			validation.Required,
			validation.NotIn(r.FromAccountNumber).Error("cannot transfer to the same account"),
		),
		validation.Field(&r.Description, descriptionRules...),
		validation.Field(&r.Category, validation.By(validCategory)),
	)
}

// OpenAccountRequest opens a new account for the caller
type OpenAccountRequest struct {
	InitialDeposit decimal.Decimal    `json:"initialDeposit"`
	OverdraftLimit decimal.Decimal    `json:"overdraftLimit"`
	Type           models.AccountType `json:"accountType"`
	Currency       models.Currency    `json:"currency,omitempty"`
}

// Validate checks type, currency and overdraft eligibility
func (r OpenAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.By(validAccountType)),
		validation.Field(&r.Currency, validation.By(validCurrency)),
		validation.Field(&r.OverdraftLimit, validation.By(func(any) error {
			return ValidateOverdraft(r.OverdraftLimit, r.Type, r.currency())
		})),
	)
}

func (r OpenAccountRequest) currency() models.Currency {
	if r.Currency == "" {
		return models.DefaultCurrency
	}
	return r.Currency
}

// HistoryFilter narrows a history listing
type HistoryFilter struct {
	Type     models.TransactionType   `json:"type,omitempty"`
	Status   models.TransactionStatus `json:"status,omitempty"`
	Category models.Category          `json:"category,omitempty"`
}

// Validate checks that every set filter names a known value
func (f HistoryFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type, validation.By(validTransactionType)),
		validation.Field(&f.Status, validation.By(validTransactionStatus)),
		validation.Field(&f.Category, validation.By(validCategory)),
	)
}
