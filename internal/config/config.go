package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Widget    WidgetConfig    `mapstructure:"widget"`
	Reminders RemindersConfig `mapstructure:"reminders"`
	Log       LogConfig       `mapstructure:"log"`
}

// StorageConfig locates the sqlite file shared with the widget process.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// CalendarConfig fixes the time zone day counts are computed in, app-wide.
type CalendarConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured zone; empty means the system zone.
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// WidgetConfig sets the row budget per widget size class.
type WidgetConfig struct {
	SmallRows  int `mapstructure:"small_rows"`
	MediumRows int `mapstructure:"medium_rows"`
	LargeRows  int `mapstructure:"large_rows"`
}

// RemindersConfig controls the agent's due-reminder check cadence.
type RemindersConfig struct {
	CheckSchedule string `mapstructure:"check_schedule"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("storage.path", defaultStoragePath())
	v.SetDefault("calendar.timezone", "")
	v.SetDefault("widget.small_rows", 1)
	v.SetDefault("widget.medium_rows", 3)
	v.SetDefault("widget.large_rows", 6)
	v.SetDefault("reminders.check_schedule", "@every 1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Read from environment variables
	v.SetEnvPrefix("RETIRETIME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for convenience
	v.BindEnv("storage.path", "RETIRETIME_DB")
	v.BindEnv("calendar.timezone", "TZ")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are usable
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return err
	}
	return nil
}

// defaultStoragePath puts the shared database under the user config
// directory, falling back to the working directory.
func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "retiretime.db"
	}
	return filepath.Join(dir, "retiretime", "retiretime.db")
}
