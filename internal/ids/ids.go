// Package ids generates account numbers and transaction identifiers.
package ids

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/benx421/personal-bank/internal/models"
)

const (
	accountNumberDigits = 7
	transactionIDPrefix = "TXN"
	suffixLength        = 5
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// AccountNumberGenerator produces type-prefixed account numbers
type AccountNumberGenerator interface {
	NewAccountNumber(accountType models.AccountType) (string, error)
}

// TransactionIDGenerator produces transaction identifiers
type TransactionIDGenerator interface {
	NewTransactionID(now time.Time) (string, error)
}

// Generator implements both generators on top of a random source
type Generator struct {
	random io.Reader
}

// NewGenerator creates a Generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{random: rand.Reader}
}

// NewAccountNumber returns the type prefix followed by seven random digits
func (g *Generator) NewAccountNumber(accountType models.AccountType) (string, error) {
	if !accountType.Valid() {
		return "", fmt.Errorf("invalid account type %q", accountType)
	}

	limit := big.NewInt(10_000_000)
	n, err := rand.Int(g.random, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}

	return fmt.Sprintf("%s%0*d", accountType.NumberPrefix(), accountNumberDigits, n.Int64()), nil
}

// NewTransactionID returns TXN-<base36 unix millis>-<5 random base36 chars>, upper-cased
func (g *Generator) NewTransactionID(now time.Time) (string, error) {
	suffix, err := g.randomBase36(suffixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}

	timestamp := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", transactionIDPrefix, timestamp, suffix)), nil
}

func (g *Generator) randomBase36(length int) (string, error) {
	limit := big.NewInt(int64(len(base36Alphabet)))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.random, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Ensure Generator implements both interfaces
var (
	_ AccountNumberGenerator = (*Generator)(nil)
	_ TransactionIDGenerator = (*Generator)(nil)
)
