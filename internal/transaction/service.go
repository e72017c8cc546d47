package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateReceiptURL(ctx context.Context, userID, id uuid.UUID, receiptURL string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      uuid.UUID
	Amount      int64
	Type        Type
	Description string
	Merchant    string
	Date        time.Time
	CategoryID  *uuid.UUID
	ReceiptURL  string
}

type ListFilter struct {
	UserID    uuid.UUID
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		UserID:      params.UserID,
		Amount:      params.Amount,
		Type:        params.Type,
		Description: params.Description,
		Merchant:    params.Merchant,
		Date:        params.Date,
		CategoryID:  params.CategoryID,
		ReceiptURL:  params.ReceiptURL,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// ListSince returns the user's transactions dated on or after start.
// It is the fetch behind the analytics pipeline.
func (s *Service) ListSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{UserID: userID, StartDate: &start})
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

func (s *Service) AttachReceipt(ctx context.Context, userID, id uuid.UUID, receiptURL string) error {
	return s.repo.UpdateReceiptURL(ctx, userID, id, receiptURL)
}
