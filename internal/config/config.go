// Package config loads CLI defaults from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "KAOLIN_CONFIG"

// Backends accepted by the render command.
const (
	BackendPNG  = "png"
	BackendTerm = "term"
)

// Config holds CLI configuration.
type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport"`
	Render   RenderConfig   `mapstructure:"render"`
	Log      LogConfig      `mapstructure:"log"`
}

// ViewportConfig is the size used for scenes that do not set one.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// RenderConfig holds render command settings.
type RenderConfig struct {
	Backend     string `mapstructure:"backend"`
	OutDir      string `mapstructure:"out_dir"`
	Concurrency int    `mapstructure:"concurrency"`
	Cache       bool   `mapstructure:"cache"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Path returns the config file path: $KAOLIN_CONFIG, otherwise
// ~/.config/kaolin/config.toml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kaolin", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// KAOLIN_, so render.out_dir is KAOLIN_RENDER_OUT_DIR. A missing default
// config file is not an error; a missing $KAOLIN_CONFIG is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)
	v.SetDefault("render.backend", BackendPNG)
	v.SetDefault("render.out_dir", ".")
	v.SetDefault("render.concurrency", 4)
	v.SetDefault("render.cache", true)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	explicit := os.Getenv(EnvConfig) != ""
	if path := Path(); path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("KAOLIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return Config{}, fmt.Errorf("read config: %w", err)
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings no command can use.
func (c Config) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height))
	}
	switch c.Render.Backend {
	case BackendPNG, BackendTerm:
	default:
		errs = append(errs, fmt.Errorf("unknown render backend %q", c.Render.Backend))
	}
	if c.Render.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("render concurrency must be at least 1, got %d", c.Render.Concurrency))
	}
	return errors.Join(errs...)
}
