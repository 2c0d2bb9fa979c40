package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in the package doc are considered; os.Args is filtered with
// flagx.FilterArgs so -c/-config and foreign flags do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-l", "-f", "-m", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Driver, "b", cfg.Driver, "storage driver (sqlite|postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json|zerolog)")
	fs.StringVar(&cfg.MetricsFile, "m", cfg.MetricsFile, "metrics textfile written on exit")
	fs.IntVar(&cfg.TxMaxRetries, "r", cfg.TxMaxRetries, "reservation transaction retries")
	timeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "per-command timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OperationTimeout = time.Duration(*timeout) * time.Second
}
