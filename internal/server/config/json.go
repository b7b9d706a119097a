package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/flagx"
)

// jsonConfig is the on-disk shape of the config file. Durations are written
// as Go duration strings ("15m", "720h"). Absent keys keep their current value.
type jsonConfig struct {
	EndpointAddrHTTP             *string `json:"endpoint_addr_http"`
	DatabaseDSN                  *string `json:"database_dsn"`
	SecretKey                    *string `json:"secret_key"`
	AccessTokenValidityDuration  *string `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *string `json:"refresh_token_validity_duration"`
	LogLevel                     *string `json:"log_level"`
	LogPretty                    *bool   `json:"log_pretty"`
	GraphiQL                     *bool   `json:"graphiql"`
	DatabaseConnectAttempts      *uint   `json:"database_connect_attempts"`
}

// parseJson overlays values from the file given with -c/-config. Without
// the flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var c jsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SecretKey, c.SecretKey)
	setString(&cfg.LogLevel, c.LogLevel)

	if err := setDuration(&cfg.AccessTokenValidityDuration, c.AccessTokenValidityDuration); err != nil {
		return fmt.Errorf("access_token_validity_duration: %w", err)
	}
	if err := setDuration(&cfg.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration); err != nil {
		return fmt.Errorf("refresh_token_validity_duration: %w", err)
	}

	if c.LogPretty != nil {
		cfg.LogPretty = *c.LogPretty
	}
	if c.GraphiQL != nil {
		cfg.GraphiQL = *c.GraphiQL
	}
	if c.DatabaseConnectAttempts != nil {
		cfg.DatabaseConnectAttempts = *c.DatabaseConnectAttempts
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
