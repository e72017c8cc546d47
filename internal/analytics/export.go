package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// WriteCSV writes the time series as CSV for download, amounts in dollars.
func WriteCSV(w io.Writer, result Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Income", "Expenses", "Net", "Transactions"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range result.TimeSeries {
		row := []string{
			p.Date,
			centsToDollars(p.Income),
			centsToDollars(p.Expenses),
			centsToDollars(p.Net),
			strconv.Itoa(p.Transactions),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func centsToDollars(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
