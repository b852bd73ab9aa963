package config

import (
	"flag"
	"os"
	"time"

	"github.com/derol/majestic-launcher/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the launcher database file
//	-s string   session token secret
//	-l string   log level
//	-r int      progress refresh interval in seconds
//
// Args are filtered to just these flags so the config file flags handled
// elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the launcher database file")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session token secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	refresh := fs.Int("r", int(cfg.RefreshInterval.Seconds()), "progress refresh interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refresh) * time.Second
}
