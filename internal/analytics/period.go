package analytics

import (
	"strings"
	"time"
)

// Period is the caller-selected analytics window. It controls both the filter
// cutoff and the bucketing granularity of the time series.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod maps external input onto a Period, defaulting to month for
// absent or unrecognized values.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	case PeriodQuarter:
		return PeriodQuarter
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodMonth
	}
}

// Start computes the window cutoff for the period relative to now:
// a rolling 7 days for week, otherwise the first day of the current
// month, quarter or year.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// NominalDays is the fixed day count used for average-daily-spend math.
// Deliberately a constant rather than elapsed days, so values compare
// predictably across calls made at different points in the period.
func (p Period) NominalDays() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// bucketKey returns the time-series grouping key for a date: calendar days
// for week and month views, calendar months for quarter and year views.
func (p Period) bucketKey(t time.Time) string {
	switch p {
	case PeriodQuarter, PeriodYear:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
