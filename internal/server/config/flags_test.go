package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "1m", "-r", "3h",
				"-l", "debug", "-pretty", "-graphiql=false"},
			want: Config{
				EndpointAddrHTTP:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  time.Minute,
				RefreshTokenValidityDuration: 3 * time.Hour,
				LogLevel:                     "debug",
				LogPretty:                    true,
				GraphiQL:                     false,
			},
		},
		{
			name: "config flag is ignored",
			args: []string{"-c", "notes.json", "-a", ":1"},
			want: Config{EndpointAddrHTTP: ":1"},
		},
		{
			name:    "bad duration",
			args:    []string{"-t", "often"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
