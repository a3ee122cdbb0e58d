// Package contract implements the contract-status resolver: a read-through
// cache in front of the slow external lookup, with single-flight
// de-duplication, bounded retry and an overall deadline.
package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"

	domain "github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

// Options bounds the external lookup.
type Options struct {
	MaxAttempts    int
	BackoffBase    time.Duration
	AttemptTimeout time.Duration
	OverallTimeout time.Duration
	CacheTTL       time.Duration
}

// Resolver resolves contract numbers to status snapshots.
type Resolver struct {
	source  domain.StatusSource
	cache   domain.StatusCache
	opts    Options
	group   singleflight.Group
	logger  logger.Interface
	metrics metrics.Sink
}

func NewResolver(
	source domain.StatusSource,
	cache domain.StatusCache,
	opts Options,
	log logger.Interface,
	sink metrics.Sink,
) *Resolver {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 500 * time.Millisecond
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = 15 * time.Second
	}
	if opts.OverallTimeout <= 0 {
		opts.OverallTimeout = 50 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 300 * time.Second
	}
	if sink == nil {
		sink = metrics.NewNoop()
	}
	return &Resolver{
		source:  source,
		cache:   cache,
		opts:    opts,
		logger:  log,
		metrics: sink,
	}
}

// Resolve returns the status for a contract number. The cache hit path skips
// the external call entirely. On miss, concurrent lookups for the same
// number collapse into one upstream call; the caller abandons that call at
// the overall deadline while it may still complete (and populate the cache)
// in the background.
func (r *Resolver) Resolve(ctx context.Context, contractNumber string) (*domain.Resolution, error) {
	if cached, err := r.cache.Get(ctx, contractNumber); err == nil {
		r.metrics.Inc(metrics.CacheHit)
		return &domain.Resolution{Status: cached, FromCache: true}, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		// A broken cache degrades to the slow path, never to an error.
		r.logger.Warnw("contract cache read failed", "contract", contractNumber, "error", err)
	}
	r.metrics.Inc(metrics.CacheMiss)

	ch := r.group.DoChan(contractNumber, func() (interface{}, error) {
		// The fetch runs on a detached context so one caller timing out
		// does not cancel the shared in-flight lookup for the others. The
		// context lives inside the closure: only the winning flight owns
		// one, callers that join an in-flight lookup allocate nothing.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opts.OverallTimeout)
		defer cancel()
		return r.fetchAndCache(fetchCtx, contractNumber)
	})

	waitCtx, waitCancel := context.WithTimeout(ctx, r.opts.OverallTimeout)
	defer waitCancel()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return &domain.Resolution{Status: res.Val.(*domain.Status)}, nil
	case <-waitCtx.Done():
		r.metrics.Inc(metrics.CRMTimeout)
		return nil, fmt.Errorf("lookup for %s exceeded %s: %w",
			contractNumber, r.opts.OverallTimeout, domain.ErrTimeout)
	}
}

// Invalidate drops the cached snapshot for a contract number, used when a
// status change is known out-of-band.
func (r *Resolver) Invalidate(ctx context.Context, contractNumber string) error {
	return r.cache.Invalidate(ctx, contractNumber)
}

func (r *Resolver) fetchAndCache(ctx context.Context, contractNumber string) (*domain.Status, error) {
	status, err := r.fetchWithRetry(ctx, contractNumber)
	if err != nil {
		return nil, err
	}

	// Only successful lookups are cached; a not-found must be re-checked on
	// the next message.
	if cacheErr := r.cache.Set(ctx, contractNumber, status, r.opts.CacheTTL); cacheErr != nil {
		r.logger.Warnw("failed to cache contract status", "contract", contractNumber, "error", cacheErr)
	}

	return status, nil
}

func (r *Resolver) fetchWithRetry(ctx context.Context, contractNumber string) (*domain.Status, error) {
	r.metrics.Inc(metrics.CRMLookup)

	var status *domain.Status
	backoff := retry.WithMaxRetries(uint64(r.opts.MaxAttempts-1), retry.NewExponential(r.opts.BackoffBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, r.opts.AttemptTimeout)
		defer cancel()

		fetched, fetchErr := r.source.FetchStatus(attemptCtx, contractNumber)
		if fetchErr != nil {
			if domain.IsRetryable(fetchErr) {
				return retry.RetryableError(fetchErr)
			}
			return fetchErr
		}

		status = fetched
		return nil
	})
	if err != nil {
		return nil, r.classify(err)
	}

	return status, nil
}

func (r *Resolver) classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAuthFailed),
		errors.Is(err, domain.ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		r.metrics.Inc(metrics.CRMTimeout)
		return fmt.Errorf("%v: %w", err, domain.ErrTimeout)
	default:
		return fmt.Errorf("%v: %w", err, domain.ErrUpstream)
	}
}
