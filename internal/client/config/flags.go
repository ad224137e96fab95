package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ideatrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the idea-management service
//	-d string   path of the local session database
//	-t int      request timeout in seconds
//	-r int      fallback rate-limit retry wait in seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r"})

	fs := flag.NewFlagSet("config", flag.PanicOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the idea-management service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local session database")

	fs.Func("t", "request timeout in seconds", func(v string) error {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
		return nil
	})

	fs.Func("r", "fallback rate-limit retry wait in seconds", func(v string) error {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		cfg.RetryWait = time.Duration(seconds) * time.Second
		return nil
	})

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
