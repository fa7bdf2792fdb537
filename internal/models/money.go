package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code supported by the bank
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// DefaultCurrency is used when an account is opened without an explicit currency
const DefaultCurrency = CurrencyUSD

var minorUnits = map[Currency]int32{
	CurrencyUSD: 2,
	CurrencyEUR: 2,
	CurrencyGBP: 2,
	CurrencyJPY: 0,
}

// amountCeiling is the first value the NUMERIC(20,4) columns cannot hold
var amountCeiling = decimal.New(1, 16)

// InRange reports whether amount, or a balance, fits the ledger columns
func InRange(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(amountCeiling)
}

// MaxAmount is the largest amount the ledger stores
func MaxAmount() decimal.Decimal {
	return amountCeiling.Sub(decimal.New(1, -4))
}

// Valid reports whether the currency is one the bank holds accounts in
func (c Currency) Valid() bool {
	_, ok := minorUnits[c]
	return ok
}

// MinorUnits returns the number of fractional digits the currency allows
func (c Currency) MinorUnits() int32 {
	return minorUnits[c]
}

// CheckPrecision returns an error if amount carries more fractional digits
// than the currency allows.
func (c Currency) CheckPrecision(amount decimal.Decimal) error {
	units, ok := minorUnits[c]
	if !ok {
		return fmt.Errorf("unsupported currency %q", c)
	}
	if !amount.Equal(amount.Truncate(units)) {
		return fmt.Errorf("amount %s has more than %d decimal places for %s", amount.String(), units, c)
	}
	return nil
}

// Format renders amount with the currency's fixed number of decimals
func (c Currency) Format(amount decimal.Decimal) string {
	return amount.StringFixed(c.MinorUnits())
}
