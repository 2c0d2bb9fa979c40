package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-b", "postgres", "-d", "postgres://db", "-l", "debug", "-f", "json",
			"-m", "out.prom", "-r", "3", "-t", "10",
		}, expected: &Config{
			Driver:           "postgres",
			DatabaseDSN:      "postgres://db",
			LogLevel:         "debug",
			LogFormat:        "json",
			MetricsFile:      "out.prom",
			TxMaxRetries:     3,
			OperationTimeout: 10 * time.Second,
		}},
		{name: "config flag is ignored", args: []string{"cmd", "-c", "x.json", "-d", "a.db"},
			expected: &Config{DatabaseDSN: "a.db"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
		{name: "incorrect retries", args: []string{"cmd", "-r", "-"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
