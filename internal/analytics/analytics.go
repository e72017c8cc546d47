// Package analytics turns a raw list of transactions into the time-series
// buckets, category breakdowns, trend deltas and summary statistics behind
// the dashboard and analytics views. Every derived structure is rebuilt from
// scratch on each call; nothing here mutates or persists its input.
package analytics

import (
	"time"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// TimeSeriesPoint is one chart bucket: a calendar day or month with its
// summed income, expenses, net and transaction count. Amounts are cents.
type TimeSeriesPoint struct {
	Date         string `json:"date"`
	Income       int64  `json:"income"`
	Expenses     int64  `json:"expenses"`
	Net          int64  `json:"net"`
	Transactions int    `json:"transactions"`
}

// CategoryBucket aggregates expense transactions for one category.
type CategoryBucket struct {
	Category     string  `json:"category"`
	Amount       int64   `json:"amount"`
	Percentage   float64 `json:"percentage"`
	Color        string  `json:"color"`
	Transactions int     `json:"transactions"`
	AvgAmount    float64 `json:"avgAmount"`
}

// Direction classifies the sign of a trend after the ±5% deadband.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

// Significance is a coarse tier for the magnitude of a trend.
type Significance string

const (
	SignificanceHigh   Significance = "high"
	SignificanceMedium Significance = "medium"
	SignificanceLow    Significance = "low"
)

// TrendRecord compares two adjacent trailing windows of the time series.
type TrendRecord struct {
	Period       string       `json:"period"`
	Growth       float64      `json:"growth"`
	Trend        Direction    `json:"trend"`
	Significance Significance `json:"significance"`
}

// Summary holds aggregate totals for the filtered transaction set.
type Summary struct {
	TotalIncome      int64   `json:"totalIncome"`
	TotalExpenses    int64   `json:"totalExpenses"`
	NetIncome        int64   `json:"netIncome"`
	AvgDailySpending float64 `json:"avgDailySpending"`
	TopCategory      string  `json:"topCategory"`
	TransactionCount int     `json:"transactionCount"`
	Period           Period  `json:"period"`
}

// Result is the full analytics payload for one user and period.
type Result struct {
	TimeSeries        []TimeSeriesPoint `json:"timeSeries"`
	CategoryBreakdown []CategoryBucket  `json:"categoryBreakdown"`
	Trends            []TrendRecord     `json:"trends"`
	Summary           Summary           `json:"summary"`
	Insights          []string          `json:"insights"`
}

// Generate runs the full aggregation pipeline over the transactions for the
// requested period. It is pure and deterministic for a fixed now: the same
// input always produces a structurally identical Result, the empty input
// produces empty slices and a zeroed summary, and no input ever makes it
// fail.
func Generate(txs []*transaction.Transaction, period Period, now time.Time) Result {
	filtered := filterByPeriod(txs, period, now)

	series := buildTimeSeries(filtered, period, now)
	breakdown := buildCategoryBreakdown(filtered)
	trends := buildTrends(series)
	summary := buildSummary(filtered, breakdown, period)
	insights := buildInsights(filtered, breakdown, trends)

	return Result{
		TimeSeries:        series,
		CategoryBreakdown: breakdown,
		Trends:            trends,
		Summary:           summary,
		Insights:          insights,
	}
}

// filterByPeriod narrows the set to transactions dated on or after the
// period's start. Transactions with a zero date are treated as dated now
// rather than dropped, so one bad record never discards the batch.
func filterByPeriod(txs []*transaction.Transaction, period Period, now time.Time) []*transaction.Transaction {
	start := period.Start(now)

	filtered := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx == nil {
			continue
		}

		if !effectiveDate(tx, now).Before(start) {
			filtered = append(filtered, tx)
		}
	}

	return filtered
}

// effectiveDate substitutes now for a missing transaction date.
func effectiveDate(tx *transaction.Transaction, now time.Time) time.Time {
	if tx.Date.IsZero() {
		return now
	}

	return tx.Date
}
