package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// Thresholds for the insight rules, in rule order.
const (
	concentrationPct      = 40    // top category share of total expense
	largeTransactionCents = 10000 // average absolute transaction size
)

const fallbackInsight = "Keep tracking your expenses to get personalized insights and recommendations."

// buildInsights runs the fixed rule set over the computed structures. Output
// order is rule-declaration order, not severity. When no rule fires the
// generic fallback is emitted, so the list is never empty.
func buildInsights(txs []*transaction.Transaction, breakdown []CategoryBucket, trends []TrendRecord) []string {
	var insights []string

	if len(breakdown) > 0 && breakdown[0].Percentage > concentrationPct {
		top := breakdown[0]
		insights = append(insights, fmt.Sprintf(
			"%s accounts for %.1f%% of your spending. Consider reviewing this category for savings opportunities.",
			top.Category, top.Percentage,
		))
	}

	for _, trend := range trends {
		if trend.Significance != SignificanceHigh || !strings.Contains(trend.Period, "Recent") {
			continue
		}

		switch trend.Trend {
		case DirectionUp:
			insights = append(insights, fmt.Sprintf(
				"Your spending has increased by %.1f%% recently. Monitor your expenses closely.",
				trend.Growth,
			))
		case DirectionDown:
			insights = append(insights, fmt.Sprintf(
				"Great job! Your spending decreased by %.1f%% recently.",
				-trend.Growth,
			))
		}
	}

	if avg := avgTransactionSize(txs); avg > largeTransactionCents {
		insights = append(insights, fmt.Sprintf(
			"Your average transaction is %s. Consider tracking large purchases more carefully.",
			formatDollars(avg),
		))
	}

	if len(insights) == 0 {
		insights = append(insights, fallbackInsight)
	}

	return insights
}

// avgTransactionSize averages absolute amounts across both types, in cents.
func avgTransactionSize(txs []*transaction.Transaction) float64 {
	if len(txs) == 0 {
		return 0
	}

	var total int64

	for _, tx := range txs {
		amount := tx.Amount
		if amount < 0 {
			amount = -amount
		}

		total += amount
	}

	return float64(total) / float64(len(txs))
}

// formatDollars renders a cent amount as "$12.34".
func formatDollars(cents float64) string {
	d := decimal.NewFromFloat(cents).Div(decimal.NewFromInt(100))

	return "$" + d.StringFixed(2)
}
