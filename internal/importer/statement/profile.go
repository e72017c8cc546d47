package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Amount" with value "-10.00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	MerchantCol string // optional, empty when the format has no merchant column
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSingle
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "card",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:        "checking",
		DateCol:     "Date",
		DescCol:     "Description",
		MerchantCol: "Merchant",
		AmountMode:  amountSingle,
		AmountCol:   "Amount",
	},
	{
		Name:       "simple",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}
