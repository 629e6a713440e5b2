package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portscand.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `{
			"listen_addr": ":8090",
			"default_timeout": "500ms",
			"default_concurrency": 50,
			"report_retention": "24h"
		}`)

		var cfg DaemonConfig
		require.NoError(t, LoadAndValidate(path, &cfg))

		assert.Equal(t, ":8090", cfg.ListenAddr)
		assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.DefaultTimeout))
		assert.Equal(t, 50, cfg.DefaultConcurrency)
		assert.Equal(t, 24*time.Hour, time.Duration(cfg.ReportRetention))
	})

	t.Run("numeric duration is nanoseconds", func(t *testing.T) {
		path := writeConfig(t, `{
			"listen_addr": ":8090",
			"default_timeout": 1000000000,
			"default_concurrency": 10
		}`)

		var cfg DaemonConfig
		require.NoError(t, LoadAndValidate(path, &cfg))
		assert.Equal(t, time.Second, time.Duration(cfg.DefaultTimeout))
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg DaemonConfig
		require.Error(t, LoadAndValidate("/nonexistent/portscand.json", &cfg))
	})

	t.Run("malformed duration", func(t *testing.T) {
		path := writeConfig(t, `{
			"listen_addr": ":8090",
			"default_timeout": "fast",
			"default_concurrency": 10
		}`)

		var cfg DaemonConfig
		require.Error(t, LoadAndValidate(path, &cfg))
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{
				name:    "missing listen addr",
				content: `{"default_timeout": "1s", "default_concurrency": 10}`,
			},
			{
				name:    "zero concurrency",
				content: `{"listen_addr": ":8090", "default_timeout": "1s", "default_concurrency": 0}`,
			},
			{
				name:    "zero timeout",
				content: `{"listen_addr": ":8090", "default_concurrency": 10}`,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var cfg DaemonConfig
				require.Error(t, LoadAndValidate(writeConfig(t, tt.content), &cfg))
			})
		}
	})
}
