package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/pocketwatch-io/pocketwatch/internal/importer/statement"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Checking(t *testing.T) {
	csv := `Account Statement - exported 2025-08-01
Account,Checking 0042

Date,Description,Merchant,Amount
2025-07-30,Grocery run,Kroger,-58.74
2025-07-09,Salary,Acme Corp,"8,608.52"
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2025, 7, 30), txs[0].Date)
	assert.Equal(t, "Grocery run", txs[0].Description)
	assert.Equal(t, "Kroger", txs[0].Merchant)
	assert.Equal(t, int64(5874), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, date(2025, 7, 9), txs[1].Date)
	assert.Equal(t, "Salary", txs[1].Description)
	assert.Equal(t, int64(860852), txs[1].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_CardSplitColumns(t *testing.T) {
	csv := `Date,Description,Debit,Credit
2025-07-15,Coffee,4.50,
2025-07-16,Refund,,12.00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, int64(450), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, int64(1200), txs[1].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_EuropeanAmounts(t *testing.T) {
	csv := `Date,Description,Amount
30-01-2025,Rent,"-1.234,56"
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, date(2025, 1, 30), txs[0].Date)
	assert.Equal(t, int64(123456), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}

func TestParser_SkipsFooterAndZeroRows(t *testing.T) {
	csv := `Date,Description,Amount
2025-07-30,Groceries,-10.00
2025-07-31,Pending hold,0.00
Total,,-10.00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Groceries", txs[0].Description)
}

func TestParser_MissingDescriptionFails(t *testing.T) {
	csv := `Date,Description,Amount
2025-07-30,,-10.00
`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	require.ErrorContains(t, err, "missing description")
}

func TestParser_UnknownFormat(t *testing.T) {
	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader("Foo,Bar\n1,2\n"))
	require.ErrorContains(t, err, "no matching statement format")
}

func TestParser_Windows1252Encoding(t *testing.T) {
	encoder := charmap.Windows1252.NewEncoder()

	raw, err := encoder.String("Date,Description,Amount\n2025-07-30,Café visit,-4.00\n")
	require.NoError(t, err)

	p := statement.NewParser()
	txs, err := p.Parse(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Café visit", txs[0].Description)
}
