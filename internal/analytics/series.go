package analytics

import (
	"sort"
	"time"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// buildTimeSeries groups the filtered transactions into date buckets and sums
// income, expenses and counts per bucket. The sum of all bucket values equals
// the filtered totals, and points come out sorted ascending by bucket key.
func buildTimeSeries(txs []*transaction.Transaction, period Period, now time.Time) []TimeSeriesPoint {
	type bucket struct {
		income   int64
		expenses int64
		count    int
	}

	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		key := period.bucketKey(effectiveDate(tx, now))

		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}

		if tx.Type == transaction.TypeIncome {
			b.income += tx.Amount
		} else {
			b.expenses += tx.Amount
		}

		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	series := make([]TimeSeriesPoint, 0, len(keys))

	for _, key := range keys {
		b := buckets[key]
		series = append(series, TimeSeriesPoint{
			Date:         key,
			Income:       b.income,
			Expenses:     b.expenses,
			Net:          b.income - b.expenses,
			Transactions: b.count,
		})
	}

	return series
}
