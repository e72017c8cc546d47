package analytics

import "math"

// Trend labels. Insight rules key off the "Recent" label, so it must stay in
// sync with buildInsights.
const (
	trendLabelSpending = "Recent vs Previous Week"
	trendLabelIncome   = "Income Trend"
)

// buildTrends compares the last 7 time-series buckets against the 7 before
// that, separately for expenses and income. With fewer than 2 points there is
// nothing to compare; with a zero prior-window sum the growth is undefined and
// that trend is skipped rather than reported as infinite.
func buildTrends(series []TimeSeriesPoint) []TrendRecord {
	if len(series) < 2 {
		return nil
	}

	recent := tail(series, 7)
	prior := window(series, 14, 7)

	var trends []TrendRecord

	if t, ok := makeTrend(trendLabelSpending, sumExpenses(recent), sumExpenses(prior)); ok {
		trends = append(trends, t)
	}

	if t, ok := makeTrend(trendLabelIncome, sumIncome(recent), sumIncome(prior)); ok {
		trends = append(trends, t)
	}

	return trends
}

func makeTrend(label string, recent, prior int64) (TrendRecord, bool) {
	if prior <= 0 {
		return TrendRecord{}, false
	}

	growth := float64(recent-prior) / float64(prior) * 100

	return TrendRecord{
		Period:       label,
		Growth:       growth,
		Trend:        classifyDirection(growth),
		Significance: classifySignificance(growth),
	}, true
}

// classifyDirection applies the ±5% deadband. The boundary is exclusive:
// exactly +5% or -5% is stable.
func classifyDirection(growth float64) Direction {
	switch {
	case growth > 5:
		return DirectionUp
	case growth < -5:
		return DirectionDown
	default:
		return DirectionStable
	}
}

func classifySignificance(growth float64) Significance {
	switch abs := math.Abs(growth); {
	case abs > 20:
		return SignificanceHigh
	case abs > 10:
		return SignificanceMedium
	default:
		return SignificanceLow
	}
}

// tail returns the last n points (all of them when fewer exist).
func tail(series []TimeSeriesPoint, n int) []TimeSeriesPoint {
	if len(series) <= n {
		return series
	}

	return series[len(series)-n:]
}

// window returns the points between offsets from and to counted back from the
// end, clamped to the start of the series.
func window(series []TimeSeriesPoint, from, to int) []TimeSeriesPoint {
	lo := len(series) - from
	if lo < 0 {
		lo = 0
	}

	hi := len(series) - to
	if hi < lo {
		hi = lo
	}

	return series[lo:hi]
}

func sumExpenses(points []TimeSeriesPoint) int64 {
	var sum int64
	for _, p := range points {
		sum += p.Expenses
	}

	return sum
}

func sumIncome(points []TimeSeriesPoint) int64 {
	var sum int64
	for _, p := range points {
		sum += p.Income
	}

	return sum
}
