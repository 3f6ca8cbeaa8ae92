package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/logging"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

func TestNewEngineConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewEngineConfig()
		assert.Equal(t, "", cfg.TagHelperPrefix)
		assert.Equal(t, taghelpers.DefaultComparer, cfg.Comparer)
		assert.NotNil(t, cfg.Logger)
		assert.Equal(t, config.DefaultMaxConcurrency, cfg.MaxConcurrency)
	})

	t.Run("options", func(t *testing.T) {
		logger := logging.Nop()
		cfg := config.NewEngineConfig(
			config.WithTagHelperPrefix("th:"),
			config.WithComparer(taghelpers.StrictComparer),
			config.WithLogger(logger),
			config.WithMaxConcurrency(3),
		)
		assert.Equal(t, "th:", cfg.TagHelperPrefix)
		assert.True(t, cfg.Comparer.CaseSensitiveNames)
		assert.Same(t, logger, cfg.Logger)
		assert.Equal(t, 3, cfg.MaxConcurrency)
	})

	t.Run("nil logger and bad concurrency are normalised", func(t *testing.T) {
		cfg := config.NewEngineConfig(config.WithLogger(nil), config.WithMaxConcurrency(0))
		assert.NotNil(t, cfg.Logger)
		assert.Equal(t, 1, cfg.MaxConcurrency)
	})
}
