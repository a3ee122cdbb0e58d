package contract

import (
	"context"
	"errors"
	"time"
)

// StatusSource is the abstract "resolve contract → status | not-found |
// timeout" capability. The concrete transport (direct API, portal scraper)
// is an infrastructure concern and can be swapped without touching the core.
type StatusSource interface {
	FetchStatus(ctx context.Context, contractNumber string) (*Status, error)
}

// StatusCache stores status snapshots with a TTL, keyed by contract number.
type StatusCache interface {
	Get(ctx context.Context, contractNumber string) (*Status, error)
	Set(ctx context.Context, contractNumber string, status *Status, ttl time.Duration) error
	Invalidate(ctx context.Context, contractNumber string) error
}

// ErrCacheMiss is returned by StatusCache.Get when no entry exists.
var ErrCacheMiss = errors.New("contract status cache miss")
