package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

var testNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func expense(amount int64, categoryName string, date time.Time) *transaction.Transaction {
	tx := &transaction.Transaction{
		Amount: amount,
		Type:   transaction.TypeExpense,
		Date:   date,
	}
	if categoryName != "" {
		tx.Category = &transaction.Category{Name: categoryName}
	}

	return tx
}

func income(amount int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Amount: amount,
		Type:   transaction.TypeIncome,
		Date:   date,
	}
}

func TestGenerate_Empty(t *testing.T) {
	result := analytics.Generate(nil, analytics.PeriodMonth, testNow)

	assert.Empty(t, result.TimeSeries)
	assert.Empty(t, result.CategoryBreakdown)
	assert.Empty(t, result.Trends)
	assert.Zero(t, result.Summary.TotalIncome)
	assert.Zero(t, result.Summary.TotalExpenses)
	assert.Zero(t, result.Summary.NetIncome)
	assert.Zero(t, result.Summary.AvgDailySpending)
	assert.Equal(t, "None", result.Summary.TopCategory)
	assert.Zero(t, result.Summary.TransactionCount)
	require.NotEmpty(t, result.Insights)
	assert.Contains(t, result.Insights[0], "Keep tracking")
}

func TestGenerate_CategoryBreakdownExample(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(5000, "groceries", testNow.AddDate(0, 0, -1)),
		expense(3000, "dining", testNow.AddDate(0, 0, -2)),
		expense(2000, "Groceries", testNow.AddDate(0, 0, -3)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	require.Len(t, result.CategoryBreakdown, 2)

	groceries := result.CategoryBreakdown[0]
	assert.Equal(t, "Groceries", groceries.Category)
	assert.Equal(t, int64(7000), groceries.Amount)
	assert.InDelta(t, 70.0, groceries.Percentage, 1e-9)
	assert.Equal(t, 2, groceries.Transactions)
	assert.InDelta(t, 3500, groceries.AvgAmount, 1e-9)
	assert.Equal(t, "#22c55e", groceries.Color)

	dining := result.CategoryBreakdown[1]
	assert.Equal(t, "Dining", dining.Category)
	assert.Equal(t, int64(3000), dining.Amount)
	assert.InDelta(t, 30.0, dining.Percentage, 1e-9)

	assert.Equal(t, "Groceries", result.Summary.TopCategory)
	assert.Equal(t, int64(10000), result.Summary.TotalExpenses)
}

func TestGenerate_ConservationProperties(t *testing.T) {
	txs := []*transaction.Transaction{
		income(120000, testNow.AddDate(0, 0, -10)),
		income(4500, testNow.AddDate(0, 0, -10)),
		expense(5000, "groceries", testNow.AddDate(0, 0, -5)),
		expense(2599, "dining", testNow.AddDate(0, 0, -5)),
		expense(999, "", testNow.AddDate(0, 0, -1)),
		expense(15000, "travel", testNow),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	var seriesIncome, seriesExpenses int64

	var seriesCount int

	for _, p := range result.TimeSeries {
		seriesIncome += p.Income
		seriesExpenses += p.Expenses
		seriesCount += p.Transactions
		assert.Equal(t, p.Income-p.Expenses, p.Net)
	}

	assert.Equal(t, result.Summary.TotalIncome, seriesIncome)
	assert.Equal(t, result.Summary.TotalExpenses, seriesExpenses)
	assert.Equal(t, result.Summary.TransactionCount, seriesCount)
	assert.Equal(t, result.Summary.TotalIncome-result.Summary.TotalExpenses, result.Summary.NetIncome)

	var pctSum float64
	for _, b := range result.CategoryBreakdown {
		pctSum += b.Percentage
	}

	assert.InDelta(t, 100.0, pctSum, 1e-9)

	// Descending by amount, top category matches the first bucket.
	for i := 1; i < len(result.CategoryBreakdown); i++ {
		assert.GreaterOrEqual(t, result.CategoryBreakdown[i-1].Amount, result.CategoryBreakdown[i].Amount)
	}

	assert.Equal(t, result.CategoryBreakdown[0].Category, result.Summary.TopCategory)
}

func TestGenerate_UncategorizedFallsBackToOther(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(1000, "", testNow),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	require.Len(t, result.CategoryBreakdown, 1)
	assert.Equal(t, "Other", result.CategoryBreakdown[0].Category)
	assert.Equal(t, "#6b7280", result.CategoryBreakdown[0].Color)
	assert.Equal(t, "Other", result.Summary.TopCategory)
}

func TestGenerate_NoExpenses(t *testing.T) {
	txs := []*transaction.Transaction{
		income(50000, testNow.AddDate(0, 0, -2)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	assert.Empty(t, result.CategoryBreakdown)
	assert.Equal(t, "None", result.Summary.TopCategory)
	assert.Zero(t, result.Summary.TotalExpenses)
	assert.Equal(t, int64(50000), result.Summary.TotalIncome)
}

func TestGenerate_PeriodFilter(t *testing.T) {
	inWindow := expense(1000, "dining", testNow.AddDate(0, 0, -3))
	outOfWindow := expense(2000, "dining", testNow.AddDate(0, -2, 0))

	result := analytics.Generate(
		[]*transaction.Transaction{inWindow, outOfWindow},
		analytics.PeriodMonth, testNow,
	)

	assert.Equal(t, 1, result.Summary.TransactionCount)
	assert.Equal(t, int64(1000), result.Summary.TotalExpenses)
}

func TestGenerate_ZeroDateTreatedAsNow(t *testing.T) {
	txs := []*transaction.Transaction{
		{Amount: 1000, Type: transaction.TypeExpense},
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	assert.Equal(t, 1, result.Summary.TransactionCount)
	require.Len(t, result.TimeSeries, 1)
	assert.Equal(t, testNow.Format("2006-01-02"), result.TimeSeries[0].Date)
}

func TestGenerate_BucketGranularity(t *testing.T) {
	date := time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{expense(1000, "dining", date)}

	monthly := analytics.Generate(txs, analytics.PeriodMonth, testNow)
	require.Len(t, monthly.TimeSeries, 1)
	assert.Equal(t, "2025-08-05", monthly.TimeSeries[0].Date)

	yearly := analytics.Generate(txs, analytics.PeriodYear, testNow)
	require.Len(t, yearly.TimeSeries, 1)
	assert.Equal(t, "2025-08", yearly.TimeSeries[0].Date)
}

func TestGenerate_TimeSeriesSorted(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(300, "dining", testNow.AddDate(0, 0, -1)),
		expense(100, "dining", testNow.AddDate(0, 0, -15)),
		expense(200, "dining", testNow.AddDate(0, 0, -8)),
	}

	result := analytics.Generate(txs, analytics.PeriodYear, testNow)

	for i := 1; i < len(result.TimeSeries); i++ {
		assert.Less(t, result.TimeSeries[i-1].Date, result.TimeSeries[i].Date)
	}
}

func TestGenerate_AvgDailySpendingUsesNominalDays(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(30000, "groceries", testNow.AddDate(0, 0, -1)),
	}

	result := analytics.Generate(txs, analytics.PeriodMonth, testNow)
	assert.InDelta(t, 1000, result.Summary.AvgDailySpending, 1e-9)

	weekly := analytics.Generate(txs, analytics.PeriodWeek, testNow)
	assert.InDelta(t, float64(30000)/7, weekly.Summary.AvgDailySpending, 1e-9)
}

func TestGenerate_Idempotent(t *testing.T) {
	txs := []*transaction.Transaction{
		income(120000, testNow.AddDate(0, 0, -12)),
		expense(5000, "groceries", testNow.AddDate(0, 0, -5)),
		expense(2500, "dining", testNow.AddDate(0, 0, -4)),
		expense(2500, "shopping", testNow.AddDate(0, 0, -3)),
	}

	first := analytics.Generate(txs, analytics.PeriodMonth, testNow)
	second := analytics.Generate(txs, analytics.PeriodMonth, testNow)

	assert.Equal(t, first, second)
}

func TestGenerate_StableTieOrder(t *testing.T) {
	// Equal amounts keep first-seen order across repeated runs.
	txs := []*transaction.Transaction{
		expense(2500, "dining", testNow.AddDate(0, 0, -4)),
		expense(2500, "shopping", testNow.AddDate(0, 0, -3)),
	}

	for range 5 {
		result := analytics.Generate(txs, analytics.PeriodMonth, testNow)
		require.Len(t, result.CategoryBreakdown, 2)
		assert.Equal(t, "Dining", result.CategoryBreakdown[0].Category)
		assert.Equal(t, "Shopping", result.CategoryBreakdown[1].Category)
	}
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, analytics.PeriodWeek, analytics.ParsePeriod("week"))
	assert.Equal(t, analytics.PeriodQuarter, analytics.ParsePeriod("QUARTER"))
	assert.Equal(t, analytics.PeriodMonth, analytics.ParsePeriod(""))
	assert.Equal(t, analytics.PeriodMonth, analytics.ParsePeriod("fortnight"))
}

func TestPeriod_Start(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), analytics.PeriodWeek.Start(now))
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), analytics.PeriodMonth.Start(now))
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), analytics.PeriodQuarter.Start(now))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), analytics.PeriodYear.Start(now))
}
