package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultObservabilityConfig(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	assert.Equal(t, "gostays", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Logging.SlowQueryThreshold)
	assert.Empty(t, cfg.NewRelic.LicenseKey)
	assert.True(t, cfg.HealthChecks.Enabled)
	assert.Equal(t, []string{"database", "redis"}, cfg.HealthChecks.Checks)

	require.NoError(t, cfg.Validate())
}

func TestObservabilityValidate(t *testing.T) {
	t.Run("missing service name", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.ServiceName = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Level = "verbose"

		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Format = "xml"

		assert.Error(t, cfg.Validate())
	})

	t.Run("negative slow query threshold", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.SlowQueryThreshold = -time.Second

		assert.Error(t, cfg.Validate())
	})
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = ""
	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestIsProduction(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Environment = "production"
	assert.True(t, cfg.IsProduction())

	cfg.Environment = "staging"
	assert.False(t, cfg.IsProduction())
}
