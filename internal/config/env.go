package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvConfig is a DTO for the SCHEDULER_* environment variables.
// Pointer fields stay nil when the variable is unset.
type EnvConfig struct {
	Driver           string         `env:"SCHEDULER_DRIVER"`
	DatabaseDSN      string         `env:"SCHEDULER_DATABASE_DSN"`
	LogLevel         string         `env:"SCHEDULER_LOG_LEVEL"`
	LogFormat        string         `env:"SCHEDULER_LOG_FORMAT"`
	MetricsFile      string         `env:"SCHEDULER_METRICS_FILE"`
	TxMaxRetries     *int           `env:"SCHEDULER_TX_MAX_RETRIES, noinit"`
	OperationTimeout *time.Duration `env:"SCHEDULER_OPERATION_TIMEOUT, noinit"`
}

// parseEnv overlays cfg with the environment. Panics on malformed values.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	setString(&cfg.Driver, ec.Driver)
	setString(&cfg.DatabaseDSN, ec.DatabaseDSN)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.MetricsFile, ec.MetricsFile)
	if ec.TxMaxRetries != nil {
		cfg.TxMaxRetries = *ec.TxMaxRetries
	}
	if ec.OperationTimeout != nil {
		cfg.OperationTimeout = *ec.OperationTimeout
	}
}
