package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

var ErrNotFound = errors.New("category not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	CreateCategory(ctx context.Context, cat *Category) error
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FindOrCreate resolves a category by name for the user, creating it with the
// palette color when it does not exist yet. Names are normalized before lookup
// so user input casing never forks categories.
func (s *Service) FindOrCreate(ctx context.Context, userID uuid.UUID, name string, txType transaction.Type) (*Category, error) {
	normalized := Normalize(name)

	cat, err := s.repo.FindByName(ctx, userID, normalized)
	if err == nil {
		return cat, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("finding category: %w", err)
	}

	cat = &Category{
		UserID: &userID,
		Name:   normalized,
		Color:  ColorFor(normalized),
		Type:   txType,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return cat, nil
}

// List returns the user's categories plus the shared defaults.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID)
}
