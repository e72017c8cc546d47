package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

func TestInsights_ConcentrationWarning(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(9000, "dining", testNow.AddDate(0, 0, -1)),
		expense(1000, "groceries", testNow.AddDate(0, 0, -2)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	require.NotEmpty(t, result.Insights)
	assert.Contains(t, result.Insights[0], "Dining accounts for 90.0% of your spending")
}

func TestInsights_NoConcentrationAtOrBelowForty(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(400, "dining", testNow.AddDate(0, 0, -1)),
		expense(300, "groceries", testNow.AddDate(0, 0, -2)),
		expense(300, "travel", testNow.AddDate(0, 0, -3)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	for _, insight := range result.Insights {
		assert.NotContains(t, insight, "accounts for")
	}
}

func TestInsights_SpendingIncreaseAndDecrease(t *testing.T) {
	// 14 daily expense buckets inside the month window; the recent week
	// doubles the prior week, which is a high-significance upward trend.
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	var txs []*transaction.Transaction

	for i := range 7 {
		txs = append(txs, expense(1000, "dining", base.AddDate(0, 0, i)))
	}

	for i := 7; i < 14; i++ {
		txs = append(txs, expense(2000, "dining", base.AddDate(0, 0, i)))
	}

	up := analytics.Generate(txs, analytics.PeriodMonth, testNow)
	assert.Contains(t, joined(up.Insights), "Your spending has increased by 100.0% recently")

	// Reverse: recent week halves the prior week.
	var down []*transaction.Transaction

	for i := range 7 {
		down = append(down, expense(2000, "dining", base.AddDate(0, 0, i)))
	}

	for i := 7; i < 14; i++ {
		down = append(down, expense(1000, "dining", base.AddDate(0, 0, i)))
	}

	result := analytics.Generate(down, analytics.PeriodMonth, testNow)
	assert.Contains(t, joined(result.Insights), "Great job! Your spending decreased by 50.0% recently")
}

func TestInsights_LargeTransactionAdvisory(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(15050, "shopping", testNow.AddDate(0, 0, -1)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)
	assert.Contains(t, joined(result.Insights), "Your average transaction is $150.50")
}

func TestInsights_FallbackWhenNothingFires(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(400, "dining", testNow.AddDate(0, 0, -1)),
		expense(300, "groceries", testNow.AddDate(0, 0, -2)),
		expense(300, "travel", testNow.AddDate(0, 0, -3)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "Keep tracking your expenses")
}

func joined(insights []string) string {
	out := ""
	for _, s := range insights {
		out += s + "\n"
	}

	return out
}
