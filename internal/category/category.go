package category

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// Fallback is the bucket for transactions without a recognizable category.
const Fallback = "other"

// DefaultColor is the neutral display color for unknown categories.
const DefaultColor = "#6b7280"

// Category is a user-visible spending category with a display color.
// Rows with a nil UserID are shared defaults.
type Category struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	Color     string
	Type      transaction.Type
	CreatedAt time.Time
}

// palette maps normalized category names to their chart colors.
var palette = map[string]string{
	"groceries":      "#22c55e",
	"dining":         "#f59e0b",
	"transportation": "#3b82f6",
	"utilities":      "#8b5cf6",
	"entertainment":  "#ef4444",
	"healthcare":     "#06b6d4",
	"shopping":       "#f97316",
	"travel":         "#84cc16",
	"education":      "#6366f1",
	"housing":        "#ec4899",
	"income":         "#10b981",
	"other":          "#6b7280",
}

// Normalize lowercases and trims a category name so that "Groceries " and
// "groceries" land in the same bucket. Empty names fall back to "other".
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Fallback
	}

	return n
}

// ColorFor resolves the display color for a category name.
func ColorFor(name string) string {
	if c, ok := palette[Normalize(name)]; ok {
		return c
	}

	return DefaultColor
}

// DisplayName capitalizes a normalized category name for presentation.
func DisplayName(name string) string {
	n := Normalize(name)

	return strings.ToUpper(n[:1]) + n[1:]
}
