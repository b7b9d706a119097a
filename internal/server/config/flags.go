package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/notesgraph/internal/flagx"
)

// parseFlags overlays Config with command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-t duration   access token validity (e.g. "15m")
//	-r duration   refresh token validity (e.g. "720h")
//	-l string     log level (debug, info, warn, error)
//	-pretty       human readable log output
//	-graphiql     serve GraphiQL on GET /graph
//
// Arguments are filtered first so -c/-config and anything unknown is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-r", "-l", "-pretty", "-graphiql"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.DurationVar(&cfg.AccessTokenValidityDuration, "t", cfg.AccessTokenValidityDuration, "access token validity")
	fs.DurationVar(&cfg.RefreshTokenValidityDuration, "r", cfg.RefreshTokenValidityDuration, "refresh token validity")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.LogPretty, "pretty", cfg.LogPretty, "pretty log output")
	fs.BoolVar(&cfg.GraphiQL, "graphiql", cfg.GraphiQL, "serve GraphiQL explorer")

	return fs.Parse(args)
}
