package contract

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

type mockSource struct {
	FetchStatusFunc func(ctx context.Context, contractNumber string) (*domain.Status, error)
}

func (m *mockSource) FetchStatus(ctx context.Context, contractNumber string) (*domain.Status, error) {
	if m.FetchStatusFunc != nil {
		return m.FetchStatusFunc(ctx, contractNumber)
	}
	return nil, domain.ErrNotFound
}

// memoryCache is a map-backed StatusCache for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*domain.Status
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*domain.Status)}
}

func (c *memoryCache) Get(ctx context.Context, contractNumber string) (*domain.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.entries[contractNumber]; ok {
		return s, nil
	}
	return nil, domain.ErrCacheMiss
}

func (c *memoryCache) Set(ctx context.Context, contractNumber string, status *domain.Status, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[contractNumber] = status
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, contractNumber string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, contractNumber)
	return nil
}

func fastOptions() Options {
	return Options{
		MaxAttempts:    3,
		BackoffBase:    time.Millisecond,
		AttemptTimeout: 100 * time.Millisecond,
		OverallTimeout: 500 * time.Millisecond,
		CacheTTL:       time.Minute,
	}
}

func newTestResolver(source domain.StatusSource, cache domain.StatusCache, opts Options) *Resolver {
	return NewResolver(source, cache, opts, logger.NewLogger(), metrics.NewMemorySink())
}

func TestResolve_CacheHitSkipsSource(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["F0823846D"] = &domain.Status{ContractID: "F0823846D", Etat: "En cours"}

	var calls int32
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			atomic.AddInt32(&calls, 1)
			return nil, domain.ErrUpstream
		},
	}

	resolution, err := newTestResolver(source, cache, fastOptions()).Resolve(context.Background(), "F0823846D")

	require.NoError(t, err)
	assert.True(t, resolution.FromCache)
	assert.Equal(t, "En cours", resolution.Status.Etat)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestResolve_MissFetchesAndCaches(t *testing.T) {
	cache := newMemoryCache()
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			return &domain.Status{ContractID: contractNumber, Etat: "Fermé"}, nil
		},
	}

	resolver := newTestResolver(source, cache, fastOptions())
	resolution, err := resolver.Resolve(context.Background(), "F0823846D")

	require.NoError(t, err)
	assert.False(t, resolution.FromCache)
	assert.Equal(t, "Fermé", resolution.Status.Etat)

	// Second lookup must be served from the cache.
	second, err := resolver.Resolve(context.Background(), "F0823846D")
	require.NoError(t, err)
	assert.True(t, second.FromCache)
}

func TestResolve_RetriesTransientFailures(t *testing.T) {
	cache := newMemoryCache()
	var calls int32
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			if atomic.AddInt32(&calls, 1) < 3 {
				return nil, domain.ErrUpstream
			}
			return &domain.Status{ContractID: contractNumber, Etat: "En cours"}, nil
		},
	}

	resolution, err := newTestResolver(source, cache, fastOptions()).Resolve(context.Background(), "F0823846D")

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, "En cours", resolution.Status.Etat)
}

func TestResolve_NotFoundNotRetriedNotCached(t *testing.T) {
	cache := newMemoryCache()
	var calls int32
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			atomic.AddInt32(&calls, 1)
			return nil, domain.ErrNotFound
		},
	}

	resolver := newTestResolver(source, cache, fastOptions())
	_, err := resolver.Resolve(context.Background(), "F9999999D")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Empty(t, cache.entries)

	// A later lookup re-checks the source instead of serving a cached miss.
	_, err = resolver.Resolve(context.Background(), "F9999999D")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestResolve_AuthFailureNotRetried(t *testing.T) {
	var calls int32
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			atomic.AddInt32(&calls, 1)
			return nil, domain.ErrAuthFailed
		},
	}

	_, err := newTestResolver(source, newMemoryCache(), fastOptions()).Resolve(context.Background(), "F0823846D")

	require.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResolve_OverallTimeout(t *testing.T) {
	opts := fastOptions()
	opts.OverallTimeout = 50 * time.Millisecond

	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			select {
			case <-time.After(time.Second):
				return &domain.Status{ContractID: contractNumber}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}

	start := time.Now()
	_, err := newTestResolver(source, newMemoryCache(), opts).Resolve(context.Background(), "F0823846D")

	require.ErrorIs(t, err, domain.ErrTimeout)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestResolve_AbandonedFetchStillPopulatesCache(t *testing.T) {
	cache := newMemoryCache()
	release := make(chan struct{})
	fetching := make(chan struct{})
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			close(fetching)
			select {
			case <-release:
				return &domain.Status{ContractID: contractNumber, Etat: "En cours"}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}
	resolver := newTestResolver(source, cache, fastOptions())

	callerCtx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(callerCtx, "F0823846D")
		errCh <- err
	}()

	// The caller gives up while the lookup is in flight.
	<-fetching
	cancel()
	require.ErrorIs(t, <-errCh, domain.ErrTimeout)

	// The in-flight fetch owns its own detached context, so it completes on
	// its own schedule and still warms the cache for the next message.
	close(release)
	assert.Eventually(t, func() bool {
		cache.mu.Lock()
		defer cache.mu.Unlock()
		_, ok := cache.entries["F0823846D"]
		return ok
	}, time.Second, 5*time.Millisecond)
}

func TestResolve_ConcurrentLookupsCollapse(t *testing.T) {
	cache := newMemoryCache()
	var calls int32
	release := make(chan struct{})
	source := &mockSource{
		FetchStatusFunc: func(ctx context.Context, contractNumber string) (*domain.Status, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return &domain.Status{ContractID: contractNumber, Etat: "En cours"}, nil
		},
	}

	resolver := newTestResolver(source, cache, fastOptions())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolution, err := resolver.Resolve(context.Background(), "F0823846D")
			assert.NoError(t, err)
			assert.Equal(t, "En cours", resolution.Status.Etat)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidate(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["F0823846D"] = &domain.Status{ContractID: "F0823846D"}

	resolver := newTestResolver(&mockSource{}, cache, fastOptions())
	require.NoError(t, resolver.Invalidate(context.Background(), "F0823846D"))
	assert.Empty(t, cache.entries)
}
