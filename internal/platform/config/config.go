package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/isocurrency/internal/apperrors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds isogen configuration.
type Config struct {
	Table     string `mapstructure:"table"`
	Output    string `mapstructure:"output"`
	Package   string `mapstructure:"package"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// EnvPrefix is prepended to every key when read from the environment,
// e.g. ISOGEN_TABLE.
const EnvPrefix = "ISOGEN"

var defaults = map[string]string{
	"table":      "isodata.tsv",
	"output":     "isodata.go",
	"package":    "currency",
	"log_level":  "info",
	"log_format": "json",
}

var usage = map[string]string{
	"table":      "path of the tab-separated currency table",
	"output":     "path of the generated Go file",
	"package":    "package name of the generated file",
	"log_level":  "log level: debug, info, warn or error",
	"log_format": "log format: json or text",
}

// LoadConfig loads configuration from command-line flags, environment
// variables and a .env file if present, in that order of precedence.
func LoadConfig(args []string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	flags := pflag.NewFlagSet("isogen", pflag.ContinueOnError)
	for key, def := range defaults {
		v.SetDefault(key, def)
		flags.String(flagName(key), def, usage[key])
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	for key := range defaults {
		if err := v.BindPFlag(key, flags.Lookup(flagName(key))); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Table == "" {
		return fmt.Errorf("%w: table path cannot be empty", apperrors.ErrValidation)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path cannot be empty", apperrors.ErrValidation)
	}
	if c.Package == "" {
		return fmt.Errorf("%w: package name cannot be empty", apperrors.ErrValidation)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unknown log format %q", apperrors.ErrValidation, c.LogFormat)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", apperrors.ErrValidation, c.LogLevel)
	}
	return l, nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
