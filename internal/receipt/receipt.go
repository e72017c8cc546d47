// Package receipt turns raw OCR text from receipt photos into structured
// data suitable for pre-filling a transaction.
package receipt

import "time"

// Data is the structured result of parsing one receipt.
type Data struct {
	Merchant    string        `json:"merchant"`
	AmountCents int64         `json:"amount"`
	Date        time.Time     `json:"date"`
	Items       []Item        `json:"items"`
	RawText     string        `json:"rawText"`
	Confidence  float64       `json:"confidence"`
	Elapsed     time.Duration `json:"-"`
}

// Item is a single purchased line item.
type Item struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price"`
	Quantity   int    `json:"quantity,omitempty"`
}

// Validation reports whether parsed data is usable. Errors block use;
// warnings are surfaced to the user for review.
type Validation struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

const (
	unknownMerchant  = "Unknown"
	highAmountCents  = 1000000 // $10,000
	lowConfidence    = 0.5
	maxItemCents     = 100000 // $1000, anything above is likely a misread total
)

// Validate checks the parsed data for hard failures and review flags.
func Validate(data Data) Validation {
	v := Validation{Errors: []string{}, Warnings: []string{}}

	if data.Merchant == "" || data.Merchant == unknownMerchant {
		v.Warnings = append(v.Warnings, "Merchant name could not be identified")
	}

	if data.AmountCents <= 0 {
		v.Errors = append(v.Errors, "No valid amount found")
	}

	if data.AmountCents > highAmountCents {
		v.Warnings = append(v.Warnings, "Amount seems unusually high")
	}

	if data.Confidence < lowConfidence {
		v.Warnings = append(v.Warnings, "Low confidence in OCR results")
	}

	v.Valid = len(v.Errors) == 0

	return v
}
