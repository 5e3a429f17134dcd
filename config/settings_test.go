package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/zshift/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, k := range []string{"ZSHIFT_LOG_LEVEL", "ZSHIFT_LOG_FORMAT", "ZSHIFT_WORKERS", "ZSHIFT_OUTPUT_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	s, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.Settings{LogLevel: "info", LogFormat: "json", Workers: 4, OutputFormat: "table"}, s)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("ZSHIFT_LOG_LEVEL", "debug")
	t.Setenv("ZSHIFT_LOG_FORMAT", "console")
	t.Setenv("ZSHIFT_WORKERS", "2")
	t.Setenv("ZSHIFT_OUTPUT_FORMAT", "csv")

	s, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, "csv", s.OutputFormat)

	cfg, err := s.ZapConfig(false)
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
	assert.Equal(t, "console", cfg.Encoding)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("ZSHIFT_WORKERS", "zero")
	_, err := config.LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSettingsValidate(t *testing.T) {
	ok := config.Settings{LogLevel: "info", LogFormat: "json", Workers: 1, OutputFormat: "xlsx"}
	require.NoError(t, ok.Validate())

	bad := []config.Settings{
		{LogLevel: "loud", LogFormat: "json", Workers: 1, OutputFormat: "csv"},
		{LogLevel: "info", LogFormat: "xml", Workers: 1, OutputFormat: "csv"},
		{LogLevel: "info", LogFormat: "json", Workers: 0, OutputFormat: "csv"},
		{LogLevel: "info", LogFormat: "json", Workers: 1, OutputFormat: "pdf"},
	}
	for _, s := range bad {
		assert.ErrorIs(t, s.Validate(), config.ErrSettings, "%+v", s)
	}
}

func TestZapConfig_VerboseForcesDebug(t *testing.T) {
	s := config.Settings{LogLevel: "warn", LogFormat: "json", Workers: 1, OutputFormat: "table"}
	cfg, err := s.ZapConfig(true)
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
	assert.Equal(t, "json", cfg.Encoding)
}
