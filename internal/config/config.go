package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for the gess binary.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Display DisplayConfig `mapstructure:"display"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// GameConfig controls the session manager.
type GameConfig struct {
	MaxSessions int `mapstructure:"max_sessions"`
}

// DisplayConfig controls how boards are printed.
type DisplayConfig struct {
	Unicode   bool `mapstructure:"unicode"`
	ShowBoard bool `mapstructure:"show_board"`
}

// EnvPrefix is prepended to every environment override, e.g. GESS_LOGGING_LEVEL.
const EnvPrefix = "GESS"

// Load reads configuration from path. A missing file is not an error; the
// defaults and any GESS_* environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.max_sessions", 64)
	v.SetDefault("display.unicode", true)
	v.SetDefault("display.show_board", true)
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	if c.Game.MaxSessions <= 0 {
		return fmt.Errorf("game.max_sessions must be positive, got %d", c.Game.MaxSessions)
	}
	return nil
}
