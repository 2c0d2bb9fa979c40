// Package config loads runtime configuration for the scheduler CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with SCHEDULER_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage driver: sqlite or postgres
//	-d string   database DSN (SQLite file path or PostgreSQL URL)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zerolog
//	-m string   Prometheus textfile written on exit
//	-r int      reservation transaction retries
//	-t int      per-command timeout (seconds)
//
// # JSON schema
//
//	{
//	  "driver": "sqlite",
//	  "database_dsn": "scheduler.db",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "metrics_file": "",
//	  "tx_max_retries": 5,
//	  "operation_timeout": "5s"
//	}
package config
