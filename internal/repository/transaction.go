package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/benx421/personal-bank/internal/db"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/lib/pq"
)

// TransactionRepository defines the interface for the append-only transaction log
//
//go:generate mockery --name TransactionRepository --output mocks --outpkg mocks --structname MockTransactionRepository
type TransactionRepository interface {
	Append(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	Find(ctx context.Context, filter models.TransactionFilter, page models.Page) (*models.TransactionPage, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.Querier
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(q db.Querier) TransactionRepository {
	return &transactionRepository{db: q}
}

const transactionColumns = `
	seq, id, transaction_id, type, amount, currency, from_account, to_account, status,
	description, category, metadata, failure_reason, created_at, processed_at, completed_at, failed_at`

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		txn          models.Transaction
		fromAccount  sql.NullString
		toAccount    sql.NullString
		metadataJSON []byte
		processedAt  sql.NullTime
		completedAt  sql.NullTime
		failedAt     sql.NullTime
	)

	err := row.Scan(
		&txn.Seq,
		&txn.ID,
		&txn.TransactionID,
		&txn.Type,
		&txn.Amount,
		&txn.Currency,
		&fromAccount,
		&toAccount,
		&txn.Status,
		&txn.Description,
		&txn.Category,
		&metadataJSON,
		&txn.FailureReason,
		&txn.CreatedAt,
		&processedAt,
		&completedAt,
		&failedAt,
	)
	if err != nil {
		return nil, err
	}

	if fromAccount.Valid {
		txn.FromAccount = &fromAccount.String
	}
	if toAccount.Valid {
		txn.ToAccount = &toAccount.String
	}
	if processedAt.Valid {
		txn.ProcessedAt = &processedAt.Time
	}
	if completedAt.Valid {
		txn.CompletedAt = &completedAt.Time
	}
	if failedAt.Valid {
		txn.FailedAt = &failedAt.Time
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &txn.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &txn, nil
}

// Append inserts a transaction. An existing transaction_id is reported as
// models.ErrDuplicateTransaction and never overwritten.
func (r *transactionRepository) Append(ctx context.Context, txn *models.Transaction) error {
	// Only a nil interface reaches Postgres as NULL; a nil []byte is an empty JSONB value.
	var metadata any
	if txn.Metadata != nil {
		metadataJSON, err := json.Marshal(txn.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = metadataJSON
	}

	query := `
		INSERT INTO transactions (
			id, transaction_id, type, amount, currency, from_account, to_account, status,
			description, category, metadata, failure_reason, created_at, processed_at, completed_at, failed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING seq
	`

	err := r.db.QueryRowContext(ctx, query,
		txn.ID,
		txn.TransactionID,
		txn.Type,
		txn.Amount,
		txn.Currency,
		txn.FromAccount,
		txn.ToAccount,
		txn.Status,
		txn.Description,
		txn.Category,
		metadata,
		txn.FailureReason,
		txn.CreatedAt,
		txn.ProcessedAt,
		txn.CompletedAt,
		txn.FailedAt,
	).Scan(&txn.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, models.ErrDuplicateTransaction)
		}
		return fmt.Errorf("failed to append transaction: %w", translatePQError(err))
	}

	return nil
}

// FindByID retrieves a transaction by its transaction id
func (r *transactionRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
	`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return txn, nil
}

// Find returns one page of transactions matching filter, newest first
func (r *transactionRepository) Find(ctx context.Context, filter models.TransactionFilter, page models.Page) (*models.TransactionPage, error) {
	page = page.Normalize()
	where, args := buildTransactionFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	result := &models.TransactionPage{
		Transactions: []*models.Transaction{},
		Total:        total,
		Page:         page.Number,
		Limit:        page.Limit,
	}
	if total == 0 {
		return result, nil
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT%s
		FROM transactions%s
		ORDER BY seq DESC
		LIMIT $%d OFFSET $%d`, transactionColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		result.Transactions = append(result.Transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return result, nil
}

func buildTransactionFilter(filter models.TransactionFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.AccountNumbers != nil {
		args = append(args, pq.Array(filter.AccountNumbers))
		conditions = append(conditions, fmt.Sprintf("(from_account = ANY($%d) OR to_account = ANY($%d))", len(args), len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "\n\t\tWHERE " + strings.Join(conditions, " AND "), args
}
