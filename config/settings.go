package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings holds process-wide knobs read from the environment.
type Settings struct {
	LogLevel     string `env:"ZSHIFT_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	LogFormat    string `env:"ZSHIFT_LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	Workers      int    `env:"ZSHIFT_WORKERS" envDefault:"4" validate:"min=1"`
	OutputFormat string `env:"ZSHIFT_OUTPUT_FORMAT" envDefault:"table" validate:"oneof=table csv xlsx"`
}

var validate = validator.New()

// LoadSettings parses Settings from the environment and validates them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks every field against its allowed values.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}

	return nil
}

// Level parses LogLevel.
func (s Settings) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log level: %w", ErrSettings, err)
	}

	return lvl, nil
}

// ZapConfig returns the logger configuration described by s. verbose forces
// debug level.
func (s Settings) ZapConfig(verbose bool) (zap.Config, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(s.LogFormat, "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := s.Level()
	if err != nil {
		return zap.Config{}, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg, nil
}
