package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8085", cfg.RunAddress)
	assert.Equal(t, "https://banshi-fe4m.onrender.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "admin", cfg.AdminLogin)
	assert.Empty(t, cfg.DatabaseURI)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_BURST", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RateBurst)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_parseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no flags keep env values",
			args: []string{},
			want: Config{RunAddress: "env:1", APIBaseURL: "http://env", APITimeout: time.Second, LogLevel: "info"},
		},
		{
			name: "flags override",
			args: []string{"-a", "localhost:9000", "-u", "http://flag", "-t", "2s", "-k", "secret", "-d", "postgres://x", "-r", "redis:6379", "-l", "debug"},
			want: Config{
				RunAddress:  "localhost:9000",
				APIBaseURL:  "http://flag",
				APITimeout:  2 * time.Second,
				SecretKey:   "secret",
				DatabaseURI: "postgres://x",
				RedisAddr:   "redis:6379",
				LogLevel:    "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{RunAddress: "env:1", APIBaseURL: "http://env", APITimeout: time.Second, LogLevel: "info"}
			cfg.parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), tt.args)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
