// Package agent is the decision facade: it owns the active search
// configuration, heuristic weights and random stream for one game session,
// and dispatches decision requests to the configured policy. Sessions are
// independent; parallel hint computation and a live game never share state.
package agent

import (
	"fmt"
	"strings"
	"time"

	"twenty48/game"
	"twenty48/rng"
	"twenty48/searcher"
)

// PolicyKind selects the active search policy. A closed enumeration: adding a
// policy means extending policyFor, which the compiler checks.
type PolicyKind int

const (
	ExhaustiveSearch PolicyKind = iota
	RolloutSearch
	GreedySearch
)

func (k PolicyKind) Valid() bool {
	return k >= ExhaustiveSearch && k <= GreedySearch
}

func (k PolicyKind) String() string {
	switch k {
	case ExhaustiveSearch:
		return "expectimax"
	case RolloutSearch:
		return "rollout"
	case GreedySearch:
		return "greedy"
	default:
		return fmt.Sprintf("policy(%d)", int(k))
	}
}

// ParsePolicy converts a policy label to its enum value.
func ParsePolicy(name string) (PolicyKind, error) {
	switch strings.ToLower(name) {
	case "expectimax", "exhaustive":
		return ExhaustiveSearch, nil
	case "rollout":
		return RolloutSearch, nil
	case "greedy":
		return GreedySearch, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

// SearchConfig tunes the active policy. Read at the start of each Decide
// call; changing it mid-call is undefined and the host must avoid it.
type SearchConfig struct {
	Policy          PolicyKind
	BaseDepth       int
	AdaptiveDepth   bool
	RolloutCount    int
	RolloutMaxSteps int
}

// DefaultSearchConfig returns the tuning used when the host supplies nothing.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Policy:          ExhaustiveSearch,
		BaseDepth:       3,
		AdaptiveDepth:   true,
		RolloutCount:    200,
		RolloutMaxSteps: 40,
	}
}

const defaultProb4 = 0.1

// Agent holds one session's explicit state. Synchronous and single-threaded:
// every call runs to completion on the caller's goroutine.
type Agent struct {
	weights   game.Weights
	config    SearchConfig
	prob4     float64
	rand      *rng.Source
	collector searcher.Collector

	expectimax *searcher.Expectimax
	rollout    *searcher.Rollout
	greedy     *searcher.Greedy
}

type Option func(*Agent)

func WithWeights(w game.Weights) Option {
	return func(a *Agent) {
		a.weights = w
	}
}

func WithSearchConfig(c SearchConfig) Option {
	return func(a *Agent) {
		if c.Policy.Valid() {
			a.config = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rand = rng.New(seed)
	}
}

func WithProb4(prob4 float64) Option {
	return func(a *Agent) {
		if prob4 >= 0 && prob4 <= 1 {
			a.prob4 = prob4
		}
	}
}

func New(options ...Option) *Agent {
	a := &Agent{
		weights:    game.DefaultWeights(),
		config:     DefaultSearchConfig(),
		prob4:      defaultProb4,
		rand:       rng.New(1),
		collector:  searcher.NewCollector(),
		expectimax: searcher.NewExpectimax(),
		rollout:    searcher.NewRollout(),
		greedy:     searcher.NewGreedy(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Decide runs the active policy on the board and returns the chosen direction
// with per-direction diagnostics and elapsed wall-clock time.
func (a *Agent) Decide(board game.Board) (searcher.DecisionResult, error) {
	if board.Size() == 0 {
		return searcher.DecisionResult{}, fmt.Errorf("decide: board is not initialized")
	}

	policy, err := a.policyFor(a.config.Policy)
	if err != nil {
		return searcher.DecisionResult{}, err
	}

	start := time.Now()
	result := policy.ChooseBestMove(board, a.searcherConfig())
	result.Elapsed = time.Since(start)

	a.collector.RecordDecision(policy.Name(), result)
	return result, nil
}

func (a *Agent) policyFor(kind PolicyKind) (searcher.Policy, error) {
	switch kind {
	case ExhaustiveSearch:
		return a.expectimax, nil
	case RolloutSearch:
		return a.rollout, nil
	case GreedySearch:
		return a.greedy, nil
	default:
		return nil, fmt.Errorf("decide: invalid policy %d", int(kind))
	}
}

func (a *Agent) searcherConfig() searcher.Config {
	return searcher.Config{
		BaseDepth:       a.config.BaseDepth,
		AdaptiveDepth:   a.config.AdaptiveDepth,
		RolloutCount:    a.config.RolloutCount,
		RolloutMaxSteps: a.config.RolloutMaxSteps,
		Prob4:           a.prob4,
		Weights:         a.weights,
		Rand:            a.rand,
	}
}

// SetWeights replaces the heuristic weights, effective on the next Decide.
func (a *Agent) SetWeights(w game.Weights) {
	a.weights = w
}

// SetSearchConfig replaces the search configuration, effective on the next
// Decide. Out-of-enum policies are rejected, never coerced.
func (a *Agent) SetSearchConfig(c SearchConfig) error {
	if !c.Policy.Valid() {
		return fmt.Errorf("invalid policy %d", int(c.Policy))
	}
	a.config = c
	return nil
}

// SetSeed resets the session's random stream.
func (a *Agent) SetSeed(seed uint64) {
	a.rand.Seed(seed)
}

func (a *Agent) Weights() game.Weights {
	return a.weights
}

func (a *Agent) SearchConfig() SearchConfig {
	return a.config
}

func (a *Agent) Prob4() float64 {
	return a.prob4
}

// Rand exposes the session's random stream so the host spawns tiles from the
// same deterministic sequence the searches sample from.
func (a *Agent) Rand() *rng.Source {
	return a.rand
}

// Snapshot returns the cumulative decision counters and the last decision's
// diagnostics.
func (a *Agent) Snapshot() searcher.Snapshot {
	return a.collector.Snapshot()
}
