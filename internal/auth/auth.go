// Package auth issues and verifies the JWTs that guard the API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type contextKey struct{}

var userIDKey contextKey

// Tokens mints and verifies HS256 access tokens whose subject is the
// user id.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokensOption func(*Tokens)

func WithClock(now func() time.Time) TokensOption {
	return func(t *Tokens) {
		t.now = now
	}
}

func NewTokens(secret string, ttl time.Duration, opts ...TokensOption) *Tokens {
	t := &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Issue mints a signed token for the user.
func (t *Tokens) Issue(userID uuid.UUID) (string, error) {
	now := t.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and returns its user id.
func (t *Tokens) Verify(raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}

			return t.secret, nil
		},
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom extracts the authenticated user id from the context.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
