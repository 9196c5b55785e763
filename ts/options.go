package ts

import "go.uber.org/zap"

type config struct {
	init     []int
	varOrder []int
	logger   *zap.Logger
}

// Option configures a TransitionSystem at construction time.
type Option func(*config)

// WithInit overrides the default initial set (all states) with states.
// states must be a non-empty subset of [0, numStates).
func WithInit(states []int) Option {
	return func(c *config) { c.init = states }
}

// WithVarOrder supplies a permutation of [0, k) used to reorder the
// state-bit variables presented to the BDD engine. Both the
// current-state and next-state halves are permuted identically.
func WithVarOrder(perm []int) Option {
	return func(c *config) { c.varOrder = perm }
}

// WithLogger attaches a structured logger; by default nothing is
// logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(numStates int) *config {
	init := make([]int, numStates)
	for i := range init {
		init[i] = i
	}
	return &config{init: init, logger: zap.NewNop()}
}
