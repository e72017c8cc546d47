package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pocketwatch-io/pocketwatch/internal/ai"
	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/categorize"
)

func TestService_Categorize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.1, 300).
		Return(`{"category": "dining", "confidence": 0.88, "reasoning": "Restaurant purchase", "suggestedIcon": "🍽️", "suggestedColor": "#f59e0b"}`, nil)

	svc := ai.NewService(llm)
	got := svc.Categorize(context.Background(), categorize.Input{Description: "Dinner out", AmountCents: 4500})

	assert.Equal(t, "dining", got.Category)
	assert.InDelta(t, 0.88, got.Confidence, 1e-9)
}

func TestService_Categorize_TransportationBoost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.1, 300).
		Return(`{"category": "transportation", "confidence": 0.7, "reasoning": "Ride service", "suggestedIcon": "🚗", "suggestedColor": "#3b82f6"}`, nil)

	svc := ai.NewService(llm)
	got := svc.Categorize(context.Background(), categorize.Input{Description: "Uber to the office", AmountCents: 1800})

	assert.Equal(t, "transportation", got.Category)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.Contains(t, got.Reasoning, "Strong keyword match detected")
}

func TestService_Categorize_BoostCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.1, 300).
		Return(`{"category": "transportation", "confidence": 0.9, "reasoning": "Ride", "suggestedIcon": "🚗", "suggestedColor": "#3b82f6"}`, nil)

	svc := ai.NewService(llm)
	got := svc.Categorize(context.Background(), categorize.Input{Description: "lyft ride"})

	assert.InDelta(t, 0.95, got.Confidence, 1e-9)
}

func TestService_Categorize_FallsBackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.1, 300).
		Return("", errors.New("rate limited"))

	svc := ai.NewService(llm)
	got := svc.Categorize(context.Background(), categorize.Input{Description: "Uber ride", AmountCents: 1500})

	assert.Equal(t, "transportation", got.Category)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}

func TestService_Categorize_FallsBackOnGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.1, 300).
		Return("I think this is probably groceries!", nil)

	svc := ai.NewService(llm)
	got := svc.Categorize(context.Background(), categorize.Input{Description: "supermarket haul"})

	assert.Equal(t, "groceries", got.Category)
}

func TestService_Insights_ParsesArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.5, 1000).
		Return(`[{"type": "SPENDING_PATTERN", "title": "Dining up", "content": "Dining spend rose", "priority": 3, "actionable": true}]`, nil)

	svc := ai.NewService(llm)
	got := svc.Insights(context.Background(), analytics.Result{})

	require.Len(t, got, 1)
	assert.Equal(t, ai.KindSpendingPattern, got[0].Type)
	assert.Equal(t, "Dining up", got[0].Title)
}

func TestService_Insights_AcceptsSingleObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.5, 1000).
		Return(`{"type": "PREDICTION", "title": "Next month", "content": "Spending will rise", "priority": 2, "actionable": false}`, nil)

	svc := ai.NewService(llm)
	got := svc.Insights(context.Background(), analytics.Result{})

	require.Len(t, got, 1)
	assert.Equal(t, ai.KindPrediction, got[0].Type)
}

func TestService_Insights_FallbackThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llm := ai.NewMockCompleter(ctrl)
	llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), 0.5, 1000).
		Return("", errors.New("timeout"))

	result := analytics.Result{
		Summary: analytics.Summary{
			TotalExpenses:    250000,
			TransactionCount: 5,
		},
	}

	svc := ai.NewService(llm)
	got := svc.Insights(context.Background(), result)

	require.Len(t, got, 2)
	assert.Equal(t, ai.KindSpendingPattern, got[0].Type)
	assert.Contains(t, got[0].Content, "$2500.00")
	assert.Equal(t, ai.KindSavingOpportunity, got[1].Type)
	assert.Contains(t, got[1].Content, "$500.00")
}
