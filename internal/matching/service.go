// Package matching remembers which category a user files recurring
// transactions under. Rules are substring patterns learned from past
// corrections; the longest matching pattern wins, so "uber eats" beats
// "uber" for food delivery.
package matching

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/category"
)

var (
	ErrPatternTooShort = errors.New("pattern must be at least 2 characters")
	ErrCategoryEmpty   = errors.New("category is required")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindMatch(ctx context.Context, userID uuid.UUID, description string) (string, error)
	CreateRule(ctx context.Context, userID uuid.UUID, pattern, categoryName string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category name of the user's best matching rule for the
// given description, or empty string when no rule matches.
func (s *Service) Suggest(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", nil
	}

	return s.repo.FindMatch(ctx, userID, description)
}

// Learn stores a new rule mapping a description pattern to a category.
// Patterns are matched case-insensitively as substrings.
func (s *Service) Learn(ctx context.Context, userID uuid.UUID, pattern, categoryName string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if len(pattern) < 2 {
		return ErrPatternTooShort
	}

	if strings.TrimSpace(categoryName) == "" {
		return ErrCategoryEmpty
	}

	return s.repo.CreateRule(ctx, userID, pattern, category.Normalize(categoryName))
}
