package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesWith builds daily points where the prior week's expenses sum to prior
// and the recent week's to recent, spread evenly over 7 buckets each.
func seriesWith(prior, recent int64) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0, 14)

	for i := range 7 {
		points = append(points, TimeSeriesPoint{
			Date:     fmt.Sprintf("2025-08-%02d", i+1),
			Expenses: prior / 7,
		})
	}

	points[6].Expenses += prior % 7

	for i := range 7 {
		points = append(points, TimeSeriesPoint{
			Date:     fmt.Sprintf("2025-08-%02d", i+8),
			Expenses: recent / 7,
		})
	}

	points[13].Expenses += recent % 7

	return points
}

func TestBuildTrends_DirectionBoundaries(t *testing.T) {
	type testCase struct {
		name      string
		prior     int64
		recent    int64
		wantTrend Direction
		wantSig   Significance
	}

	tests := []testCase{
		{name: "ExactlyPlusFiveIsStable", prior: 70000, recent: 73500, wantTrend: DirectionStable, wantSig: SignificanceLow},
		{name: "ExactlyMinusFiveIsStable", prior: 70000, recent: 66500, wantTrend: DirectionStable, wantSig: SignificanceLow},
		{name: "PlusSixIsUp", prior: 70000, recent: 74200, wantTrend: DirectionUp, wantSig: SignificanceLow},
		{name: "MinusTwentyOneIsDownHigh", prior: 70000, recent: 55300, wantTrend: DirectionDown, wantSig: SignificanceHigh},
		{name: "PlusFifteenIsUpMedium", prior: 70000, recent: 80500, wantTrend: DirectionUp, wantSig: SignificanceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trends := buildTrends(seriesWith(tt.prior, tt.recent))
			require.Len(t, trends, 1)

			got := trends[0]
			assert.Equal(t, trendLabelSpending, got.Period)
			assert.Equal(t, tt.wantTrend, got.Trend)
			assert.Equal(t, tt.wantSig, got.Significance)

			wantGrowth := float64(tt.recent-tt.prior) / float64(tt.prior) * 100
			assert.InDelta(t, wantGrowth, got.Growth, 1e-9)
		})
	}
}

func TestBuildTrends_FewerThanTwoPoints(t *testing.T) {
	assert.Nil(t, buildTrends(nil))
	assert.Nil(t, buildTrends([]TimeSeriesPoint{{Date: "2025-08-01", Expenses: 100}}))
}

func TestBuildTrends_ZeroPriorSkipped(t *testing.T) {
	// Spending only in the recent half: growth is undefined, not infinite.
	trends := buildTrends(seriesWith(0, 70000))
	assert.Empty(t, trends)
}

func TestBuildTrends_IncomeTrendIndependent(t *testing.T) {
	points := seriesWith(70000, 70000)
	for i := range points {
		points[i].Income = 10000
	}

	points[13].Income = 40000 // recent income jump

	trends := buildTrends(points)
	require.Len(t, trends, 2)
	assert.Equal(t, trendLabelSpending, trends[0].Period)
	assert.Equal(t, DirectionStable, trends[0].Trend)
	assert.Equal(t, trendLabelIncome, trends[1].Period)
	assert.Equal(t, DirectionUp, trends[1].Trend)
}

func TestBuildTrends_ShortSeriesUsesAvailableBuckets(t *testing.T) {
	// 10 points: recent window is the last 7, prior window the first 3.
	points := seriesWith(70000, 70000)[4:]
	trends := buildTrends(points)
	require.Len(t, trends, 1)

	prior := sumExpenses(points[:3])
	recent := sumExpenses(points[3:])
	wantGrowth := float64(recent-prior) / float64(prior) * 100
	assert.InDelta(t, wantGrowth, trends[0].Growth, 1e-9)
}
