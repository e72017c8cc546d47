package analytics

import (
	"sort"

	"github.com/pocketwatch-io/pocketwatch/internal/category"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// buildCategoryBreakdown aggregates expense transactions per normalized
// category name. Buckets are sorted descending by amount; ties keep
// first-seen order so the result is stable across calls.
func buildCategoryBreakdown(txs []*transaction.Transaction) []CategoryBucket {
	type bucket struct {
		amount int64
		count  int
	}

	buckets := make(map[string]*bucket)

	var order []string

	var totalExpenses int64

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		name := category.Fallback
		if tx.Category != nil && tx.Category.Name != "" {
			name = category.Normalize(tx.Category.Name)
		}

		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
			order = append(order, name)
		}

		b.amount += tx.Amount
		b.count++
		totalExpenses += tx.Amount
	}

	breakdown := make([]CategoryBucket, 0, len(order))

	for _, name := range order {
		b := buckets[name]

		var percentage float64
		if totalExpenses > 0 {
			percentage = float64(b.amount) / float64(totalExpenses) * 100
		}

		breakdown = append(breakdown, CategoryBucket{
			Category:     category.DisplayName(name),
			Amount:       b.amount,
			Percentage:   percentage,
			Color:        category.ColorFor(name),
			Transactions: b.count,
			AvgAmount:    float64(b.amount) / float64(b.count),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})

	return breakdown
}
