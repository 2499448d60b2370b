package config

import (
	"flag"
	"os"
	"time"

	"github.com/pankitchen/pankitchen/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-d string   path of the local database file
//	-t string   HTTP timeout as a duration, e.g. "30s" ("0" disables)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	timeout := fs.String("t", cfg.HTTPTimeout.String(), "HTTP request timeout (duration)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if parsed, err := time.ParseDuration(*timeout); err == nil {
		cfg.HTTPTimeout = parsed
	}
}
