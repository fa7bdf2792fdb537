package service

import (
	"errors"
	"fmt"

	"github.com/benx421/personal-bank/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const maxDescriptionLength = 255

// ValidateAmount checks that amount is positive, storable and representable in currency
func ValidateAmount(amount decimal.Decimal, currency models.Currency) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}
	if !models.InRange(amount) {
		return fmt.Errorf("amount must not exceed %s", models.MaxAmount().String())
	}

	return currency.CheckPrecision(amount)
}

// ValidateOverdraft checks that only checking accounts carry an overdraft limit
func ValidateOverdraft(limit decimal.Decimal, accountType models.AccountType, currency models.Currency) error {
	if limit.IsNegative() {
		return fmt.Errorf("overdraft limit cannot be negative")
	}
	if limit.IsZero() {
		return nil
	}
	if accountType != models.AccountTypeChecking {
		return fmt.Errorf("only checking accounts can have an overdraft limit")
	}
	if !models.InRange(limit) {
		return fmt.Errorf("overdraft limit must not exceed %s", models.MaxAmount().String())
	}

	return currency.CheckPrecision(limit)
}

func validCategory(value any) error {
	category, _ := value.(models.Category)
	if category != "" && !category.Valid() {
		return errors.New("must be a valid category")
	}
	return nil
}

func validTransactionType(value any) error {
	txnType, _ := value.(models.TransactionType)
	if txnType != "" && !txnType.Valid() {
		return errors.New("must be a valid transaction type")
	}
	return nil
}

func validTransactionStatus(value any) error {
	status, _ := value.(models.TransactionStatus)
	if status != "" && !status.Valid() {
		return errors.New("must be a valid transaction status")
	}
	return nil
}

func validAccountType(value any) error {
	accountType, _ := value.(models.AccountType)
	if !accountType.Valid() {
		return errors.New("must be checking, savings or credit")
	}
	return nil
}

func validCurrency(value any) error {
	currency, _ := value.(models.Currency)
	if currency != "" && !currency.Valid() {
		return errors.New("must be a supported currency")
	}
	return nil
}

var descriptionRules = []validation.Rule{validation.Length(0, maxDescriptionLength)}
