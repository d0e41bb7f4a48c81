package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/month-calendar/internal/render"
	"github.com/username/month-calendar/pkg/dateutil"
	"go.uber.org/zap/zapcore"
)

const (
	// MinWidth is the width of one rendered week row
	MinWidth = 28

	envPrefix = "MONTH_CALENDAR"
)

// Config represents application configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// DisplayConfig represents calendar layout and styling
type DisplayConfig struct {
	Width     int    `mapstructure:"width"`
	WeekStart string `mapstructure:"week_start"` // "monday", "sunday", ...
	Color     string `mapstructure:"color"`      // "auto", "always" or "never"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to stderr
	Level string `mapstructure:"level"`
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"width":      "display.width",
	"week-start": "display.week_start",
	"color":      "display.color",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// Load loads configuration from file, environment and flags.
// A missing config file is only an error when configPath is set explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("display.width", MinWidth)
	v.SetDefault("display.week_start", "monday")
	v.SetDefault("display.color", "auto")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.month-calendar")
		v.AddConfigPath("/etc/month-calendar")
	}

	// Read environment variables: MONTH_CALENDAR_DISPLAY_WIDTH etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Display.Width < MinWidth {
		return fmt.Errorf("display.width must be at least %d, got %d", MinWidth, c.Display.Width)
	}
	if _, err := dateutil.ParseWeekday(c.Display.WeekStart); err != nil {
		return fmt.Errorf("display.week_start: %w", err)
	}

	switch c.Display.GetColor() {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return fmt.Errorf("display.color must be '%s', '%s' or '%s', got '%s'",
			render.ColorAuto, render.ColorAlways, render.ColorNever, c.Display.Color)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// GetWeekStart returns the weekday shown in the first column. Default: Monday
func (c *DisplayConfig) GetWeekStart() time.Weekday {
	day, err := dateutil.ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Monday
	}
	return day
}

// GetColor returns the color mode, lower-cased and trimmed. Default: auto
func (c *DisplayConfig) GetColor() string {
	mode := render.NormalizeColorMode(c.Color)
	if mode == "" {
		return render.ColorAuto
	}
	return mode
}

// GetLevel returns the configured log level. Default: warn
func (c *LogConfig) GetLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.WarnLevel
	}
	return level
}
