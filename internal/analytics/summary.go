package analytics

import "github.com/pocketwatch-io/pocketwatch/internal/transaction"

// buildSummary totals the filtered set directly rather than re-summing the
// time-series buckets. The top category comes from the breakdown, which is
// already sorted descending by amount.
func buildSummary(txs []*transaction.Transaction, breakdown []CategoryBucket, period Period) Summary {
	var income, expenses int64

	for _, tx := range txs {
		if tx.Type == transaction.TypeIncome {
			income += tx.Amount
		} else {
			expenses += tx.Amount
		}
	}

	topCategory := "None"
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Category
	}

	return Summary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetIncome:        income - expenses,
		AvgDailySpending: float64(expenses) / float64(period.NominalDays()),
		TopCategory:      topCategory,
		TransactionCount: len(txs),
		Period:           period,
	}
}
