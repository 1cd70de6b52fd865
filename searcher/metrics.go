package searcher

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is a read-only view of cumulative decision activity plus the last
// decision's diagnostics.
type Snapshot struct {
	Decisions    int
	ByPolicy     map[string]int
	TotalElapsed time.Duration
	Last         DecisionResult
}

// Collector accumulates decision diagnostics for the read-only snapshot
// surface.
type Collector interface {
	RecordDecision(policy string, result DecisionResult)
	Snapshot() Snapshot
}

type collector struct {
	decisions    atomic.Int64
	elapsedNanos atomic.Int64

	mu       sync.Mutex
	byPolicy map[string]int
	last     DecisionResult
}

func NewCollector() Collector {
	return &collector{byPolicy: make(map[string]int)}
}

func (c *collector) RecordDecision(policy string, result DecisionResult) {
	c.decisions.Add(1)
	c.elapsedNanos.Add(int64(result.Elapsed))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPolicy[policy]++
	c.last = result
}

func (c *collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	byPolicy := make(map[string]int, len(c.byPolicy))
	for k, v := range c.byPolicy {
		byPolicy[k] = v
	}
	return Snapshot{
		Decisions:    int(c.decisions.Load()),
		ByPolicy:     byPolicy,
		TotalElapsed: time.Duration(c.elapsedNanos.Load()),
		Last:         c.last,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) RecordDecision(policy string, result DecisionResult) {}
func (dummyCollector) Snapshot() Snapshot                                  { return Snapshot{} }
