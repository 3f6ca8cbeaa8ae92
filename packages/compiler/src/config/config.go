package config

import (
	"log/slog"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/logging"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// DefaultMaxConcurrency bounds BindAll when no limit is configured
const DefaultMaxConcurrency = 8

// EngineConfig represents the tag helper engine configuration shared by the
// catalog and the binder
type EngineConfig struct {
	// TagHelperPrefix scopes every binding query; empty means no prefix
	TagHelperPrefix string
	// Comparer deduplicates registered descriptors
	Comparer taghelpers.Comparer
	// Logger receives debug events; never nil after NewEngineConfig
	Logger *slog.Logger
	// MaxConcurrency bounds concurrent binding in BindAll
	MaxConcurrency int
}

// NewEngineConfig creates a new EngineConfig with optional parameters
func NewEngineConfig(opts ...Option) *EngineConfig {
	config := &EngineConfig{
		Comparer:       taghelpers.DefaultComparer,
		Logger:         logging.Nop(),
		MaxConcurrency: DefaultMaxConcurrency,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// Option is a function that modifies EngineConfig
type Option func(*EngineConfig)

// WithTagHelperPrefix sets the tag name prefix every tag helper element must carry
func WithTagHelperPrefix(prefix string) Option {
	return func(c *EngineConfig) {
		c.TagHelperPrefix = prefix
	}
}

// WithComparer sets the descriptor deduplication policy
func WithComparer(comparer taghelpers.Comparer) Option {
	return func(c *EngineConfig) {
		c.Comparer = comparer
	}
}

// WithLogger sets the logger; nil keeps the no-op logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *EngineConfig) {
		c.Logger = logging.OrNop(logger)
	}
}

// WithMaxConcurrency sets the BindAll concurrency limit; values below 1 mean 1
func WithMaxConcurrency(n int) Option {
	return func(c *EngineConfig) {
		if n < 1 {
			n = 1
		}
		c.MaxConcurrency = n
	}
}
