// Package worker delivers membership events to a Notifier from a pool of goroutines.
package worker

import (
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
)

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithLogger sets a custom logger for the pool and its workers.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithName sets the pool name used in worker logger names.
func WithName(name string) Option {
	return func(p *Pool) {
		if name != "" {
			p.name = name
		}
	}
}
