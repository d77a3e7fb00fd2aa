package config

import (
	"flag"
	"os"
	"time"

	"github.com/jobtechradar/radar/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the API (default from Config)
//	-t int      request timeout in seconds
//	-d string   path of the local database file
//	-n int      trends top-N limit
//
// Args are filtered to the flags handled here so the JSON config flag
// (-c/-config) parsed elsewhere does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the JobTech Radar API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database file")
	fs.IntVar(&cfg.TrendsLimit, "n", cfg.TrendsLimit, "trends top-N limit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
