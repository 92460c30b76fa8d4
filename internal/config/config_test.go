package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; empty values count as unset
func clearEnv(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "DEBUG", "BOT_TOKEN", "SHUTDOWN_TIMEOUT", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.BotToken)
	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("RATE_LIMIT", "30")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.BotEnabled())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30, cfg.RateLimit)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")

	cfg, err := Load([]string{"--host", "localhost", "-p", "9000", "--debug"})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		errContains string
	}{
		{
			name:        "non numeric port",
			env:         map[string]string{"PORT": "http"},
			errContains: "PORT",
		},
		{
			name:        "port out of range",
			env:         map[string]string{"PORT": "70000"},
			errContains: "PORT",
		},
		{
			name:        "invalid debug flag",
			env:         map[string]string{"DEBUG": "maybe"},
			errContains: "DEBUG",
		},
		{
			name:        "zero shutdown timeout",
			env:         map[string]string{"SHUTDOWN_TIMEOUT": "0"},
			errContains: "SHUTDOWN_TIMEOUT",
		},
		{
			name:        "negative rate limit",
			env:         map[string]string{"RATE_LIMIT": "-1"},
			errContains: "RATE_LIMIT",
		},
		{
			name:        "unknown flag",
			args:        []string{"--verbose"},
			errContains: "flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad_HelpRequested(t *testing.T) {
	clearEnv(t)

	for _, args := range [][]string{{"--help"}, {"-h"}} {
		cfg, err := Load(args)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, pflag.ErrHelp)
	}
}
