package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("SCHEDULER_DRIVER", "postgres")
		t.Setenv("SCHEDULER_DATABASE_DSN", "postgres://localhost/scheduler")
		t.Setenv("SCHEDULER_TX_MAX_RETRIES", "0")
		t.Setenv("SCHEDULER_OPERATION_TIMEOUT", "1500ms")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "postgres", cfg.Driver)
		assert.Equal(t, "postgres://localhost/scheduler", cfg.DatabaseDSN)
		assert.Equal(t, 0, cfg.TxMaxRetries)
		assert.Equal(t, 1500*time.Millisecond, cfg.OperationTimeout)
		assert.Equal(t, "warn", cfg.LogLevel, "unset variables keep defaults")
	})

	t.Run("malformed value panics", func(t *testing.T) {
		t.Setenv("SCHEDULER_TX_MAX_RETRIES", "many")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
