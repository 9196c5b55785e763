package checker

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

// Option configures a Checker at construction time.
type Option func(*config)

// WithLogger attaches a structured logger; by default nothing is
// logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig() *config {
	return &config{logger: zap.NewNop()}
}
