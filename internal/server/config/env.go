package config

import (
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig lists the recognised environment variables. Unset variables
// leave the current value alone, so nothing here carries a default.
type envConfig struct {
	EndpointAddrHTTP             string        `env:"NOTES_HTTP_ADDR"`
	DatabaseDSN                  string        `env:"NOTES_DATABASE_DSN"`
	SecretKey                    string        `env:"NOTES_SECRET_KEY"`
	AccessTokenValidityDuration  time.Duration `env:"NOTES_ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"NOTES_REFRESH_TOKEN_TTL"`
	LogLevel                     string        `env:"NOTES_LOG_LEVEL"`
	LogPretty                    string        `env:"NOTES_LOG_PRETTY"`
	GraphiQL                     string        `env:"NOTES_GRAPHIQL"`
	DatabaseConnectAttempts      uint          `env:"NOTES_DB_CONNECT_ATTEMPTS"`
}

func parseEnv(cfg *Config) error {
	var e envConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		return err
	}

	if e.EndpointAddrHTTP != "" {
		cfg.EndpointAddrHTTP = e.EndpointAddrHTTP
	}
	if e.DatabaseDSN != "" {
		cfg.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		cfg.SecretKey = e.SecretKey
	}
	if e.AccessTokenValidityDuration != 0 {
		cfg.AccessTokenValidityDuration = e.AccessTokenValidityDuration
	}
	if e.RefreshTokenValidityDuration != 0 {
		cfg.RefreshTokenValidityDuration = e.RefreshTokenValidityDuration
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.DatabaseConnectAttempts != 0 {
		cfg.DatabaseConnectAttempts = e.DatabaseConnectAttempts
	}

	if err := setBool(&cfg.LogPretty, e.LogPretty); err != nil {
		return err
	}
	return setBool(&cfg.GraphiQL, e.GraphiQL)
}

func setBool(dst *bool, v string) error {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
