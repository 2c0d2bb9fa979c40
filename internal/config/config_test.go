package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, "scheduler.db", c.DatabaseDSN)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Empty(t, c.MetricsFile)
	assert.Equal(t, 5, c.TxMaxRetries)
	assert.Equal(t, 5*time.Second, c.OperationTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn":      "from-json.db",
		"log_level":         "info",
		"operation_timeout": "9s",
	})
	t.Setenv("SCHEDULER_LOG_LEVEL", "debug")
	t.Setenv("SCHEDULER_TX_MAX_RETRIES", "2")

	os.Args = []string{"scheduler", "-c", path, "-r", "7"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, DriverSQLite, cfg.Driver, "default")
	assert.Equal(t, "from-json.db", cfg.DatabaseDSN, "json")
	assert.Equal(t, "debug", cfg.LogLevel, "env over json")
	assert.Equal(t, 7, cfg.TxMaxRetries, "flag over env")
	assert.Equal(t, 9*time.Second, cfg.OperationTimeout, "json survives flag default")
}
