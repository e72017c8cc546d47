// Package categorize implements the keyword-driven fallback classifier used
// when the AI categorizer is unavailable or returns garbage. It is
// deterministic: the first matching rule in priority order wins.
package categorize

import (
	"strings"

	"github.com/pocketwatch-io/pocketwatch/internal/category"
)

// Suggestion is a classified category with a confidence score, shaped like
// the AI categorizer's response so callers can't tell the two apart.
type Suggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Icon       string  `json:"suggestedIcon"`
	Color      string  `json:"suggestedColor"`
}

// Input is the transaction data the classifier works from.
type Input struct {
	Description string
	Merchant    string
	AmountCents int64
}

// largeIncomeCents marks the amount above which an otherwise unmatched
// transaction is assumed to be income.
const largeIncomeCents = 50000

type rule struct {
	category   string
	confidence float64
	reasoning  string
	icon       string
	keywords   []string
	merchants  []string
}

// rules are evaluated top to bottom; transportation has highest priority so
// ride services never land in "other".
var rules = []rule{
	{
		category:   "transportation",
		confidence: 0.9,
		reasoning:  "Matched transportation keywords (Uber, ride, gas, etc.)",
		icon:       "🚗",
		keywords:   []string{"uber", "lyft", "taxi", "ride", "gas", "fuel", "parking", "metro", "bus", "train", "airport"},
		merchants:  []string{"shell", "exxon", "bp"},
	},
	{
		category:   "groceries",
		confidence: 0.85,
		reasoning:  "Matched grocery-related keywords",
		icon:       "🛒",
		keywords:   []string{"grocery", "supermarket"},
		merchants:  []string{"walmart", "kroger", "target"},
	},
	{
		category:   "dining",
		confidence: 0.85,
		reasoning:  "Matched dining/food keywords",
		icon:       "🍽️",
		keywords:   []string{"restaurant", "cafe", "food", "doordash", "ubereats"},
		merchants:  []string{"mcdonalds", "starbucks", "chipotle"},
	},
	{
		category:   "entertainment",
		confidence: 0.85,
		reasoning:  "Matched entertainment/subscription keywords",
		icon:       "🎬",
		keywords:   []string{"netflix", "spotify", "subscription", "movie", "game"},
	},
}

// Classify assigns a category to the transaction using the keyword rules,
// falling through to an income heuristic and finally to "other".
func Classify(in Input) Suggestion {
	description := strings.ToLower(in.Description)
	merchant := strings.ToLower(in.Merchant)

	for _, r := range rules {
		if matches(r, description, merchant) {
			return suggestion(r.category, r.confidence, r.reasoning, r.icon)
		}
	}

	if containsAny(description, []string{"salary", "paycheck", "deposit", "payment"}) || in.AmountCents > largeIncomeCents {
		return suggestion("income", 0.8, "Matched income-related keywords or large amount", "💰")
	}

	return suggestion("other", 0.5, "No specific category match found", "💳")
}

// IsTransportation reports whether the input carries a strong transportation
// keyword. The AI categorizer uses it to boost confidence on agreement.
func IsTransportation(in Input) bool {
	description := strings.ToLower(in.Description)
	merchant := strings.ToLower(in.Merchant)

	return matches(rules[0], description, merchant)
}

func matches(r rule, description, merchant string) bool {
	return containsAny(description, r.keywords) ||
		containsAny(merchant, r.keywords) ||
		containsAny(merchant, r.merchants)
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

func suggestion(cat string, confidence float64, reasoning, icon string) Suggestion {
	return Suggestion{
		Category:   cat,
		Confidence: confidence,
		Reasoning:  reasoning,
		Icon:       icon,
		Color:      category.ColorFor(cat),
	}
}
