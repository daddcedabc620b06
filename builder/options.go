// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// options.go — functional options for Builder.

package builder

import "go.uber.org/zap"

// Option customizes a Builder.
type Option func(*builderConfig)

// builderConfig is the resolved option set. Defaults: no-op logger, lenient.
type builderConfig struct {
	log    *zap.Logger
	strict bool
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes ingestion diagnostics (merged titles, duplicate links,
// skipped names) to log at debug level. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.log = log }
}

// WithStrict makes empty movie titles and participant names an error instead
// of a skip.
func WithStrict(strict bool) Option {
	return func(c *builderConfig) { c.strict = strict }
}
