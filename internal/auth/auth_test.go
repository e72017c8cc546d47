package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketwatch-io/pocketwatch/internal/auth"
)

var testNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func newTestTokens(now time.Time) *auth.Tokens {
	return auth.NewTokens("test-secret", time.Hour, auth.WithClock(func() time.Time { return now }))
}

func TestTokens_IssueVerify(t *testing.T) {
	tokens := newTestTokens(testNow)
	userID := uuid.New()

	raw, err := tokens.Issue(userID)
	require.NoError(t, err)

	got, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokens_Verify_Expired(t *testing.T) {
	raw, err := newTestTokens(testNow).Issue(uuid.New())
	require.NoError(t, err)

	later := newTestTokens(testNow.Add(2 * time.Hour))

	_, err = later.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_Verify_WrongSecret(t *testing.T) {
	raw, err := newTestTokens(testNow).Issue(uuid.New())
	require.NoError(t, err)

	other := auth.NewTokens("other-secret", time.Hour, auth.WithClock(func() time.Time { return testNow }))

	_, err = other.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_Verify_Garbage(t *testing.T) {
	_, err := newTestTokens(testNow).Verify("not.a.jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	tokens := newTestTokens(testNow)
	userID := uuid.New()

	raw, err := tokens.Issue(userID)
	require.NoError(t, err)

	var gotUserID uuid.UUID

	handler := auth.Middleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.UserIDFrom(r.Context())
		require.True(t, ok)
		gotUserID = id
	}))

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
