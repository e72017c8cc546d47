package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/cache"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

// CacheStatus tells the transport layer whether a result came from the cache,
// so it can surface the outcome as a response header.
type CacheStatus string

const (
	CacheHit       CacheStatus = "HIT"
	CacheMiss      CacheStatus = "MISS"
	CacheMissEmpty CacheStatus = "MISS-EMPTY"
)

//go:generate mockgen -source=service.go -destination=lister_mock.go -package=analytics
type TransactionLister interface {
	ListSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]*transaction.Transaction, error)
}

// Service is the cache-wrapped aggregation entry point used by request
// handlers. Results stay cached for the freshness window; empty results use a
// shorter window so newly added transactions show up promptly. Concurrent
// misses for the same key may both recompute, which is fine: the computation
// is idempotent and cheap.
type Service struct {
	transactions TransactionLister
	cache        *cache.TTLCache[Result]
	emptyTTL     time.Duration
	now          func() time.Time
}

type ServiceOption func(*Service)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(transactions TransactionLister, resultCache *cache.TTLCache[Result], emptyTTL time.Duration, opts ...ServiceOption) *Service {
	s := &Service{
		transactions: transactions,
		cache:        resultCache,
		emptyTTL:     emptyTTL,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the analytics result for the user and period, serving a stored
// result unchanged on a cache hit and recomputing otherwise.
func (s *Service) Get(ctx context.Context, userID uuid.UUID, period Period) (Result, CacheStatus, error) {
	key := cacheKey(userID, period)

	if result, ok := s.cache.Get(key); ok {
		return result, CacheHit, nil
	}

	now := s.now()

	txs, err := s.transactions.ListSince(ctx, userID, period.Start(now))
	if err != nil {
		return Result{}, CacheMiss, fmt.Errorf("listing transactions for analytics: %w", err)
	}

	result := Generate(txs, period, now)

	if result.Summary.TransactionCount == 0 {
		s.cache.SetTTL(key, result, s.emptyTTL)
		return result, CacheMissEmpty, nil
	}

	s.cache.Set(key, result)

	return result, CacheMiss, nil
}

func cacheKey(userID uuid.UUID, period Period) string {
	return userID.String() + "_" + string(period)
}
