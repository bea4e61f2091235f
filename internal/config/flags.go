package config

import (
	"flag"
	"os"

	"github.com/torqlabs/torq-wallet/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string     DSN of the local database (default from Config)
//	-t duration   mining tick interval, e.g. 100ms
//	-w duration   simulated transfer delay, e.g. 2s
//	-s string     session token signing secret
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, to avoid interference with the JSON-config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-w", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "DSN of the local database")
	fs.DurationVar(&cfg.MiningTickInterval, "t", cfg.MiningTickInterval, "mining tick interval")
	fs.DurationVar(&cfg.TransferDelay, "w", cfg.TransferDelay, "simulated transfer delay")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session token signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
