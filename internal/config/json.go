package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
	"github.com/dmitrijs2005/vaxscheduler/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	Driver           string         `json:"driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
	MetricsFile      string         `json:"metrics_file"`
	TxMaxRetries     *int           `json:"tx_max_retries"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
}

// parseJson overlays cfg with the fields present in the file named by -c or
// -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.Driver, jc.Driver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.MetricsFile, jc.MetricsFile)
	if jc.TxMaxRetries != nil {
		cfg.TxMaxRetries = *jc.TxMaxRetries
	}
	if jc.OperationTimeout.Duration > 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
