package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.ManualRun)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOPHERLINGS_MANUAL_RUN", "true")
	t.Setenv("GOPHERLINGS_DEBOUNCE", "50ms")
	t.Setenv("GOPHERLINGS_CHECK_JOBS", "3")
	t.Setenv("GOPHERLINGS_LOG", "watch.log")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.ManualRun)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 3, cfg.CheckConcurrency)
	assert.Equal(t, "watch.log", cfg.LogFile)
}

func TestConfigFromEnv_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"manual run", "GOPHERLINGS_MANUAL_RUN", "maybe"},
		{"debounce", "GOPHERLINGS_DEBOUNCE", "soon"},
		{"jobs", "GOPHERLINGS_CHECK_JOBS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := ConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debounce = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.CheckConcurrency = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ProgressFile = ""
	assert.Error(t, cfg.Validate())
}

func TestNewLogger_File(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "gopherlings.log")

	logger, closeFn, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closeFn())
	assert.FileExists(t, cfg.LogFile)
}
