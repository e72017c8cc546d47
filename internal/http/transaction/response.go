package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Amount      int64             `json:"amount"`
	Type        transaction.Type  `json:"type"`
	Description string            `json:"description"`
	Merchant    string            `json:"merchant,omitempty"`
	Date        time.Time         `json:"date"`
	CategoryID  *uuid.UUID        `json:"category_id,omitempty"`
	Category    *categoryResponse `json:"category,omitempty"`
	ReceiptURL  string            `json:"receipt_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Description: tx.Description,
		Merchant:    tx.Merchant,
		Date:        tx.Date,
		CategoryID:  tx.CategoryID,
		ReceiptURL:  tx.ReceiptURL,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.Category != nil {
		resp.Category = &categoryResponse{
			ID:    tx.Category.ID,
			Name:  tx.Category.Name,
			Color: tx.Category.Color,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
