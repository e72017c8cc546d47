// Package ai wraps the LLM API behind typed categorization and insight
// calls. Every AI failure degrades to the deterministic rule-based path, so
// callers always get an answer.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/categorize"
)

// InsightKind labels a generated financial insight.
type InsightKind string

const (
	KindSpendingPattern   InsightKind = "SPENDING_PATTERN"
	KindBudgetAlert       InsightKind = "BUDGET_ALERT"
	KindSavingOpportunity InsightKind = "SAVING_OPPORTUNITY"
	KindUnusualActivity   InsightKind = "UNUSUAL_ACTIVITY"
	KindPrediction        InsightKind = "PREDICTION"
)

// Insight is one AI-generated recommendation.
type Insight struct {
	Type            InsightKind `json:"type"`
	Title           string      `json:"title"`
	Content         string      `json:"content"`
	Priority        int         `json:"priority"`
	Actionable      bool        `json:"actionable"`
	Recommendations []string    `json:"recommendations,omitempty"`
}

//go:generate mockgen -source=service.go -destination=completer_mock.go -package=ai
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

type Service struct {
	llm Completer
}

func NewService(llm Completer) *Service {
	return &Service{llm: llm}
}

// Categorize asks the model to classify the transaction. Strong keyword
// agreement boosts the model's confidence; any failure falls back to the
// rule-based classifier.
func (s *Service) Categorize(ctx context.Context, in categorize.Input) categorize.Suggestion {
	content, err := s.llm.Complete(ctx, categorizePrompt(in), 0.1, 300)
	if err != nil {
		slog.Warn("ai categorization failed, using rules", "error", err)
		return categorize.Classify(in)
	}

	var suggestion categorize.Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &suggestion); err != nil {
		slog.Warn("ai categorization returned invalid json, using rules", "error", err)
		return categorize.Classify(in)
	}

	if suggestion.Category == "" || suggestion.Confidence == 0 || suggestion.Reasoning == "" {
		slog.Warn("ai categorization response incomplete, using rules")
		return categorize.Classify(in)
	}

	return boostConfidence(in, suggestion)
}

// boostConfidence raises confidence when the model's transportation call is
// backed by a strong keyword match, capped at 0.95.
func boostConfidence(in categorize.Input, suggestion categorize.Suggestion) categorize.Suggestion {
	if suggestion.Category != "transportation" || !categorize.IsTransportation(in) {
		return suggestion
	}

	boosted := suggestion.Confidence + 0.2
	if boosted > 0.95 {
		boosted = 0.95
	}

	suggestion.Confidence = boosted
	suggestion.Reasoning = "Strong keyword match detected: " + suggestion.Reasoning

	return suggestion
}

// Insights asks the model for personalized recommendations based on the
// analytics result, falling back to threshold rules on failure.
func (s *Service) Insights(ctx context.Context, result analytics.Result) []Insight {
	content, err := s.llm.Complete(ctx, insightsPrompt(result), 0.5, 1000)
	if err != nil {
		slog.Warn("ai insights failed, using fallback", "error", err)
		return fallbackInsights(result)
	}

	var insights []Insight
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &insights); err != nil {
		// Some models return a single object instead of an array.
		var single Insight
		if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &single); err != nil {
			slog.Warn("ai insights returned invalid json, using fallback", "error", err)
			return fallbackInsights(result)
		}

		insights = []Insight{single}
	}

	return insights
}

const (
	highSpendingCents     = 100000 // $1000
	largeTransactionCents = 10000  // $100
)

// fallbackInsights mirrors the AI output shape using fixed thresholds.
func fallbackInsights(result analytics.Result) []Insight {
	var insights []Insight

	if result.Summary.TotalExpenses > highSpendingCents {
		insights = append(insights, Insight{
			Type:  KindSpendingPattern,
			Title: "High Monthly Spending Detected",
			Content: fmt.Sprintf(
				"You've spent %s this month. Consider reviewing your expenses to identify areas for savings.",
				dollars(result.Summary.TotalExpenses),
			),
			Priority:   3,
			Actionable: true,
			Recommendations: []string{
				"Review largest expenses",
				"Set a monthly budget",
				"Track daily spending",
			},
		})
	}

	if count := result.Summary.TransactionCount; count > 0 {
		total := result.Summary.TotalExpenses + result.Summary.TotalIncome

		avg := total / int64(count)
		if avg > largeTransactionCents {
			insights = append(insights, Insight{
				Type:  KindSavingOpportunity,
				Title: "Large Transaction Pattern",
				Content: fmt.Sprintf(
					"Your average transaction is %s. Consider if these large purchases are necessary.",
					dollars(avg),
				),
				Priority:   2,
				Actionable: true,
				Recommendations: []string{
					"Plan large purchases in advance",
					"Compare prices before buying",
					"Consider alternatives",
				},
			})
		}
	}

	return insights
}

func categorizePrompt(in categorize.Input) string {
	var b strings.Builder

	b.WriteString("You are a financial expert analyzing transactions. Categorize this transaction with high accuracy:\n\n")
	fmt.Fprintf(&b, "Transaction: %q\nAmount: %s\nMerchant: %s\n\n", in.Description, dollars(in.AmountCents), orUnknown(in.Merchant))
	b.WriteString(`Categories: transportation, groceries, dining, utilities, entertainment, healthcare, shopping, travel, education, housing, income, other.

Ride services, gas stations, parking and transit are transportation, never other. Fast food and delivery are dining. Grocery stores are groceries.

Respond ONLY with valid JSON:
{"category": "exact_category_name", "confidence": 0.85, "reasoning": "Clear explanation why this category", "suggestedIcon": "🚗", "suggestedColor": "#3b82f6"}`)

	return b.String()
}

func insightsPrompt(result analytics.Result) string {
	var b strings.Builder

	b.WriteString("Analyze this financial data and provide actionable insights:\n\n")
	fmt.Fprintf(&b, "Financial Summary (%s):\n", result.Summary.Period)
	fmt.Fprintf(&b, "- Total Income: %s\n", dollars(result.Summary.TotalIncome))
	fmt.Fprintf(&b, "- Total Expenses: %s\n", dollars(result.Summary.TotalExpenses))
	fmt.Fprintf(&b, "- Net Income: %s\n", dollars(result.Summary.NetIncome))
	fmt.Fprintf(&b, "- Transaction Count: %d\n\n", result.Summary.TransactionCount)

	b.WriteString("Spending by Category:\n")

	for _, bucket := range result.CategoryBreakdown {
		fmt.Fprintf(&b, "- %s: %s\n", bucket.Category, dollars(bucket.Amount))
	}

	b.WriteString(`
Generate 2-4 personalized financial insights. Respond ONLY with a JSON array of objects:
{"type": "SPENDING_PATTERN" | "BUDGET_ALERT" | "SAVING_OPPORTUNITY" | "UNUSUAL_ACTIVITY" | "PREDICTION", "title": "...", "content": "...", "priority": 1-5, "actionable": true, "recommendations": ["..."]}

Focus on actionable insights that help improve financial health.`)

	return b.String()
}

func dollars(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}

	return s
}
