package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/category"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindByName matches the user's own categories first, then shared defaults.
func (s *Store) FindByName(ctx context.Context, userID uuid.UUID, name string) (*category.Category, error) {
	query := `
		SELECT id, user_id, name, color, type, created_at
		FROM categories
		WHERE name = $1 AND (user_id = $2 OR user_id IS NULL)
		ORDER BY user_id NULLS LAST
		LIMIT 1
	`

	var cat category.Category

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, name, userID).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.Color, &typeStr, &cat.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("finding category: %w", err)
	}

	cat.Type = transaction.Type(typeStr)

	return &cat, nil
}

func (s *Store) CreateCategory(ctx context.Context, cat *category.Category) error {
	query := `
		INSERT INTO categories (user_id, name, color, type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cat.UserID,
		cat.Name,
		cat.Color,
		cat.Type,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	query := `
		SELECT id, user_id, name, color, type, created_at
		FROM categories
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var cat category.Category

		var typeStr string

		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.Color, &typeStr, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cat.Type = transaction.Type(typeStr)
		cats = append(cats, &cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}
