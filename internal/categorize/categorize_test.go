package categorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketwatch-io/pocketwatch/internal/categorize"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		name         string
		input        categorize.Input
		wantCategory string
	}

	tests := []testCase{
		{
			name:         "UberRide",
			input:        categorize.Input{Description: "Uber ride to airport", AmountCents: 2350},
			wantCategory: "transportation",
		},
		{
			name:         "GasStationMerchant",
			input:        categorize.Input{Description: "Fill up", Merchant: "Shell Station 42", AmountCents: 4500},
			wantCategory: "transportation",
		},
		{
			name:         "Supermarket",
			input:        categorize.Input{Description: "Weekly supermarket run", AmountCents: 8700},
			wantCategory: "groceries",
		},
		{
			name:         "GroceryMerchant",
			input:        categorize.Input{Description: "Food shopping", Merchant: "Kroger #12", AmountCents: 5400},
			wantCategory: "groceries",
		},
		{
			name:         "Restaurant",
			input:        categorize.Input{Description: "Dinner at a restaurant", AmountCents: 6200},
			wantCategory: "dining",
		},
		{
			name:         "Streaming",
			input:        categorize.Input{Description: "Netflix subscription", AmountCents: 1599},
			wantCategory: "entertainment",
		},
		{
			name:         "Paycheck",
			input:        categorize.Input{Description: "Monthly paycheck", AmountCents: 350000},
			wantCategory: "income",
		},
		{
			name:         "LargeUnmatchedAmountIsIncome",
			input:        categorize.Input{Description: "Wire transfer abc", AmountCents: 75000},
			wantCategory: "income",
		},
		{
			name:         "NoMatch",
			input:        categorize.Input{Description: "misc stuff", AmountCents: 1200},
			wantCategory: "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categorize.Classify(tt.input)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.NotEmpty(t, got.Reasoning)
			assert.NotEmpty(t, got.Color)
			assert.Greater(t, got.Confidence, 0.0)
		})
	}
}

func TestClassify_TransportationBeatsGroceryMerchant(t *testing.T) {
	// "gas" in the description wins over the Walmart merchant match.
	got := categorize.Classify(categorize.Input{Description: "gas refill", Merchant: "Walmart fuel center"})
	assert.Equal(t, "transportation", got.Category)
}

func TestClassify_Deterministic(t *testing.T) {
	in := categorize.Input{Description: "Starbucks latte", Merchant: "Starbucks", AmountCents: 650}

	first := categorize.Classify(in)
	for range 3 {
		assert.Equal(t, first, categorize.Classify(in))
	}
}

func TestIsTransportation(t *testing.T) {
	assert.True(t, categorize.IsTransportation(categorize.Input{Description: "uber home"}))
	assert.True(t, categorize.IsTransportation(categorize.Input{Merchant: "Exxon"}))
	assert.False(t, categorize.IsTransportation(categorize.Input{Description: "lunch"}))
}
