// Package metrics defines the counter sink injected into the pipeline so
// runtime counters stay scoped to the wiring that created them instead of
// living in package-level state.
package metrics

import "sync"

// Sink receives named counter increments from pipeline components.
type Sink interface {
	Inc(name string)
	Add(name string, delta int64)
}

// Counter names emitted by the pipeline.
const (
	CacheHit         = "contract_cache_hit"
	CacheMiss        = "contract_cache_miss"
	NLUFallback      = "nlu_fallback"
	NLUSuccess       = "nlu_success"
	CRMLookup        = "crm_lookup"
	CRMTimeout       = "crm_timeout"
	ComplaintCreated = "complaint_created"
	SweepEscalated   = "sweep_escalated"
	SweepReminded    = "sweep_reminded"
	SweepBumped      = "sweep_priority_bumped"
)

type noopSink struct{}

func (noopSink) Inc(string)        {}
func (noopSink) Add(string, int64) {}

// NewNoop returns a sink that discards everything.
func NewNoop() Sink {
	return noopSink{}
}

// MemorySink is an in-memory sink, used by tests and the debug endpoint.
type MemorySink struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemorySink() *MemorySink {
	return &MemorySink{counters: make(map[string]int64)}
}

func (s *MemorySink) Inc(name string) {
	s.Add(name, 1)
}

func (s *MemorySink) Add(name string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name] += delta
}

// Value returns the current value of a counter.
func (s *MemorySink) Value(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[name]
}

// Snapshot returns a copy of all counters.
func (s *MemorySink) Snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}
