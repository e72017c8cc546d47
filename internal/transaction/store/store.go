package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner and returns a populated Transaction.
// Expected column order: id, user_id, amount, type, description, merchant, date,
// category_id, category_name, category_color, receipt_url, created_at, updated_at, deleted_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var merchant, receiptURL sql.NullString

	var catID *uuid.UUID

	var catName, catColor sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &typeStr, &tx.Description, &merchant, &tx.Date,
		&catID, &catName, &catColor, &receiptURL,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Merchant = merchant.String
	tx.ReceiptURL = receiptURL.String
	tx.CategoryID = catID

	if catName.Valid && catID != nil {
		tx.Category = &transaction.Category{
			ID:    *catID,
			Name:  catName.String,
			Color: catColor.String,
		}
	}

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.user_id, t.amount, t.type, t.description, t.merchant, t.date,
	t.category_id, c.name as category_name, c.color as category_color,
	t.receipt_url, t.created_at, t.updated_at, t.deleted_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, type, description, merchant, date, category_id, receipt_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.Amount,
		tx.Type,
		tx.Description,
		nullString(tx.Merchant),
		tx.Date,
		tx.CategoryID,
		nullString(tx.ReceiptURL),
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1 AND t.user_id = $2 AND t.deleted_at IS NULL`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.deleted_at IS NULL`

	args := []any{filter.UserID}

	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, type = $2, description = $3, merchant = $4, date = $5, category_id = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.Amount,
		tx.Type,
		tx.Description,
		nullString(tx.Merchant),
		tx.Date,
		tx.CategoryID,
		tx.ID,
		tx.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	query := `
		UPDATE transactions
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	_, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateReceiptURL(ctx context.Context, userID, id uuid.UUID, receiptURL string) error {
	query := `
		UPDATE transactions
		SET receipt_url = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, receiptURL, id, userID)
	if err != nil {
		return fmt.Errorf("updating receipt url: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
