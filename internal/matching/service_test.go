package matching_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pocketwatch-io/pocketwatch/internal/matching"
)

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	userID := uuid.New()

	repo.EXPECT().
		FindMatch(gomock.Any(), userID, "UBER EATS 8472").
		Return("dining", nil)

	got, err := svc.Suggest(context.Background(), userID, "  UBER EATS 8472  ")
	require.NoError(t, err)
	assert.Equal(t, "dining", got)
}

func TestService_Suggest_EmptyDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	got, err := svc.Suggest(context.Background(), uuid.New(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	userID := uuid.New()

	repo.EXPECT().
		CreateRule(gomock.Any(), userID, "uber eats", "dining").
		Return(nil)

	err := svc.Learn(context.Background(), userID, "  Uber Eats  ", "Dining")
	require.NoError(t, err)
}

func TestService_Learn_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	err := svc.Learn(context.Background(), uuid.New(), "x", "dining")
	assert.ErrorIs(t, err, matching.ErrPatternTooShort)

	err = svc.Learn(context.Background(), uuid.New(), "uber", "  ")
	assert.ErrorIs(t, err, matching.ErrCategoryEmpty)
}
