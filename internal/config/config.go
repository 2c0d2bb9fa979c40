package config

import "time"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the scheduler.
//
// Fields:
//   - Driver: storage backend, DriverSQLite or DriverPostgres.
//   - DatabaseDSN: SQLite file path or pgx connection string.
//   - LogLevel / LogFormat: see logging.New. Logs go to stderr.
//   - MetricsFile: when set, command counters are written there on exit.
//   - TxMaxRetries: extra attempts for a reservation that lost a race.
//   - OperationTimeout: upper bound for a single command.
type Config struct {
	Driver           string
	DatabaseDSN      string
	LogLevel         string
	LogFormat        string
	MetricsFile      string
	TxMaxRetries     int
	OperationTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Driver = DriverSQLite
	c.DatabaseDSN = "scheduler.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.MetricsFile = ""
	c.TxMaxRetries = 5
	c.OperationTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
