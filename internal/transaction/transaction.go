package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ParseType normalizes external spellings ("INCOME", "Expense") into a Type.
// Unrecognized values default to expense.
func ParseType(s string) Type {
	if strings.EqualFold(s, string(TypeIncome)) {
		return TypeIncome
	}

	return TypeExpense
}

// ErrNotFound is returned when a transaction does not exist or belongs to
// another user.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a financial transaction owned by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int64 // Amount in cents, always positive
	Type        Type
	Description string
	Merchant    string
	Date        time.Time
	CategoryID  *uuid.UUID
	Category    *Category // Loaded via JOIN
	ReceiptURL  string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Category is the category reference attached to a transaction.
type Category struct {
	ID    uuid.UUID
	Name  string
	Color string
}
