// SPDX-License-Identifier: Unlicense OR MIT

// Package config holds the configuration of the strata command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gioui.org/strata/layout"
)

// EnvPrefix prefixes the environment variables overriding the
// configuration, as in STRATA_LAYOUT_WIDTH.
const EnvPrefix = "STRATA"

// Config is the complete configuration.
type Config struct {
	Layout LayoutConfig `mapstructure:"layout"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// LayoutConfig configures the layout context.
type LayoutConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
	// Scale is the number of pixels per dp in scene documents.
	Scale            float32 `mapstructure:"scale"`
	MaxElements      int     `mapstructure:"max_elements"`
	MaxMeasuredWords int     `mapstructure:"max_measured_words"`
	Culling          bool    `mapstructure:"culling"`
	Debug            bool    `mapstructure:"debug"`
	ExternalScroll   bool    `mapstructure:"external_scroll"`
	WheelScale       float32 `mapstructure:"wheel_scale"`
}

// LoggerConfig configures logging.
type LoggerConfig struct {
	// Level is a zap level name.
	Level string `mapstructure:"level"`
	// Format is "console" or "json".
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	// LogFile, if set, receives JSON logs in addition to the console.
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults registers the default of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("layout.width", 1024)
	v.SetDefault("layout.height", 768)
	v.SetDefault("layout.scale", 1)
	v.SetDefault("layout.max_elements", 8192)
	v.SetDefault("layout.max_measured_words", 16384)
	v.SetDefault("layout.culling", true)
	v.SetDefault("layout.debug", false)
	v.SetDefault("layout.external_scroll", false)
	v.SetDefault("layout.wheel_scale", 10)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "strata")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// NewViper returns a viper instance with the defaults set and the
// environment bound.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewDefaultConfig returns the configuration made of the defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads the configuration file at path, if any, into v and
// returns the validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the configuration in v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	l := c.Layout
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("layout dimensions must be positive, got %vx%v", l.Width, l.Height))
	}
	if l.Scale <= 0 {
		errs = append(errs, fmt.Errorf("layout.scale must be positive, got %v", l.Scale))
	}
	if l.MaxElements <= 0 {
		errs = append(errs, fmt.Errorf("layout.max_elements must be positive, got %d", l.MaxElements))
	}
	if l.MaxMeasuredWords <= 0 {
		errs = append(errs, fmt.Errorf("layout.max_measured_words must be positive, got %d", l.MaxMeasuredWords))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format))
	}
	return errors.Join(errs...)
}

// MemorySize returns the arena capacity for the configured
// capacities. Contexts start out with the default capacities, so the
// size never drops below layout.MinMemorySize.
func (l LayoutConfig) MemorySize() int {
	return max(layout.MinMemorySizeFor(l.MaxElements, l.MaxMeasuredWords), layout.MinMemorySize())
}

// Dimensions returns the configured layout size.
func (l LayoutConfig) Dimensions() layout.Dimensions {
	return layout.Dimensions{Width: l.Width, Height: l.Height}
}

// Apply configures c with the layout settings.
func (l LayoutConfig) Apply(c *layout.Context) {
	c.SetLayoutDimensions(l.Dimensions())
	c.SetMaxElementCount(l.MaxElements)
	c.SetMaxMeasureTextCacheWordCount(l.MaxMeasuredWords)
	c.SetCullingEnabled(l.Culling)
	c.SetDebugModeEnabled(l.Debug)
	c.SetExternalScrollHandlingEnabled(l.ExternalScroll)
	c.SetWheelScale(l.WheelScale)
}
