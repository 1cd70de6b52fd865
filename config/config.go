// Package config loads the engine configuration from YAML, falling back to
// embedded defaults.
package config

// EngineConfig is the full tunable surface of the decision engine.
type EngineConfig struct {
	BoardSize int     `yaml:"board_size"`
	Seed      uint64  `yaml:"seed"`
	Prob4     float64 `yaml:"prob4"`
	Target    int     `yaml:"target"`

	Weights WeightsConfig `yaml:"weights"`
	Search  SearchConfig  `yaml:"search"`
}

// WeightsConfig mirrors the heuristic weights.
type WeightsConfig struct {
	Position     float64 `yaml:"position"`
	Monotonicity float64 `yaml:"monotonicity"`
	Smoothness   float64 `yaml:"smoothness"`
	Empty        float64 `yaml:"empty"`
}

// SearchConfig mirrors the policy tuning. Policy is one of "expectimax",
// "rollout", "greedy".
type SearchConfig struct {
	Policy          string `yaml:"policy"`
	BaseDepth       int    `yaml:"base_depth"`
	AdaptiveDepth   bool   `yaml:"adaptive_depth"`
	RolloutCount    int    `yaml:"rollout_count"`
	RolloutMaxSteps int    `yaml:"rollout_max_steps"`
}
