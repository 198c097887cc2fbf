package repository

import "github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSeed sets the initial directory. The store keeps its own copy.
func WithSeed(seed *activity.Directory) Option {
	return func(s *MemoryStore) {
		if seed != nil {
			s.dir = seed.Clone()
		}
	}
}
