package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("NOTES_HTTP_ADDR", ":9999")
	t.Setenv("NOTES_DATABASE_DSN", "postgres://env")
	t.Setenv("NOTES_SECRET_KEY", "env-secret")
	t.Setenv("NOTES_ACCESS_TOKEN_TTL", "2m")
	t.Setenv("NOTES_REFRESH_TOKEN_TTL", "3h")
	t.Setenv("NOTES_LOG_LEVEL", "warn")
	t.Setenv("NOTES_LOG_PRETTY", "true")
	t.Setenv("NOTES_GRAPHIQL", "false")
	t.Setenv("NOTES_DB_CONNECT_ATTEMPTS", "3")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 3*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.GraphiQL)
	assert.Equal(t, uint(3), cfg.DatabaseConnectAttempts)
}

func Test_parseEnv_UnsetKeepsValues(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg

	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, want, *cfg)
}

func Test_parseEnv_BadBool(t *testing.T) {
	t.Setenv("NOTES_GRAPHIQL", "sometimes")

	cfg := &Config{}
	assert.Error(t, parseEnv(cfg))
}
