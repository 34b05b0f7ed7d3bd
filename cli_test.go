// File: tyconf/cli_test.go
package tyconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{"Empty", nil, map[string]string{}},
		{"KeyValue", []string{"--host", "example.com"}, map[string]string{"host": "example.com"}},
		{"KeyEqualsValue", []string{"--host=example.com"}, map[string]string{"host": "example.com"}},
		{"BareFlagAtEnd", []string{"--debug"}, map[string]string{"debug": "true"}},
		{"BareFlagBeforeFlag", []string{"--debug", "--port", "80"}, map[string]string{"debug": "true", "port": "80"}},
		{"NonFlagSkipped", []string{"serve", "--port", "80"}, map[string]string{"port": "80"}},
		{"EmptyFlagSkipped", []string{"--", "--port", "80"}, map[string]string{"port": "80"}},
		{"EqualsWithEmptyValue", []string{"--host="}, map[string]string{"host": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArgs(tt.args))
		})
	}
}

func TestLoadArgs(t *testing.T) {
	t.Run("OverridesDeclaredProperties", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.LoadArgs([]string{
			"--host", "example.com",
			"--port=3000",
			"--debug",
		}))

		host, _ := cfg.Get("host")
		port, _ := cfg.Get("port")
		debug, _ := cfg.Get("debug")
		assert.Equal(t, "example.com", host)
		assert.Equal(t, int64(3000), port)
		assert.Equal(t, true, debug)
	})

	t.Run("UnknownFlagsIgnored", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, cfg.LoadArgs([]string{"--verbose", "--host", "h"}))
		assert.False(t, cfg.Has("verbose"))
		host, _ := cfg.Get("host")
		assert.Equal(t, "h", host)
	})

	t.Run("ParseFailureJoined", func(t *testing.T) {
		cfg := newTestConfig(t)
		err := cfg.LoadArgs([]string{"--port", "nope", "--host", "h"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `argument override for "port"`)

		host, _ := cfg.Get("host")
		assert.Equal(t, "h", host)
	})

	t.Run("ValidatorStillRuns", func(t *testing.T) {
		cfg := newTestConfig(t)
		assert.ErrorIs(t, cfg.LoadArgs([]string{"--port", "80"}), ErrValidation)
	})
}
