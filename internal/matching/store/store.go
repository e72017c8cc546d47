package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	query := `
		SELECT category_name
		FROM category_rules
		WHERE user_id = $1
		  AND $2 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var categoryName string

	err := s.db.QueryRowContext(ctx, query, userID, description).Scan(&categoryName)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding match: %w", err)
	}

	return categoryName, nil
}

func (s *Store) CreateRule(ctx context.Context, userID uuid.UUID, pattern, categoryName string) error {
	query := `
		INSERT INTO category_rules (user_id, pattern, category_name, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, userID, pattern, categoryName)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}
