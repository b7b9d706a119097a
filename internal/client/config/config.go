// Package config handles configuration for the notes CLI client.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the notes CLI.
//
// Fields:
//   - ServerEndpointAddr: URL of the server's GraphQL endpoint.
//   - RequestTimeout: upper bound for a single GraphQL request.
//   - PageSize: number of notes fetched per page by "list".
//   - LogLevel: minimum level of diagnostics written to stderr.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	PageSize           int
	LogLevel           string
}

// LoadDefaults populates c with defaults matching a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080/graph"
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 20
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
