package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   database driver
//	-d string   database DSN
//	-q string   quiz file path
//	-l string   log level
//	-f string   log format
//
// Only these flags are picked out of os.Args (flagx.FilterArgs), so the
// -c/-config and -e/-env options handled elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-q", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "b", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.ContentPath, "q", cfg.ContentPath, "quiz file (.json, .csv, .xlsx)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text or json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
