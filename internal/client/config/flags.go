package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/mesto-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components
// (the -c/-config flags are handled by the JSON loader).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-auth", "-api", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpoint, "auth", cfg.AuthEndpoint, "base URL of the auth service")
	fs.StringVar(&cfg.APIEndpoint, "api", cfg.APIEndpoint, "base URL of the content API")
	fs.StringVar(&cfg.APIAuthorization, "t", cfg.APIAuthorization, "authorization value for the content API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the client database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
