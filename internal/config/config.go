// Package config loads the application configuration from file and
// environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/dataset"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
	"github.com/alexisbeaulieu97/pulsemetrics/internal/transient"
	apperrors "github.com/alexisbeaulieu97/pulsemetrics/pkg/errors"
)

const (
	appName   = "pulsemetrics"
	envPrefix = "PULSEMETRICS"
	fileName  = "config"
)

// Config holds application configuration.
type Config struct {
	Locale          string        `mapstructure:"locale" validate:"required,bcp47"`
	CurrencySymbol  string        `mapstructure:"currency_symbol" validate:"required"`
	DefaultRange    string        `mapstructure:"default_range" validate:"required,range_key"`
	ExportCooldown  time.Duration `mapstructure:"export_cooldown" validate:"gt=0"`
	PreferencesPath string        `mapstructure:"preferences_path" validate:"required"`
	Log             LogConfig     `mapstructure:"log"`

	// Source is the config file that was read, empty when only defaults and
	// environment applied.
	Source string `mapstructure:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,log_level"`
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
}

// Dir returns the per-user configuration directory,
// $XDG_CONFIG_HOME/pulsemetrics on Linux.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// Load reads configuration from path, or from config.yaml in Dir when path is
// empty, then applies PULSEMETRICS_ environment overrides. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	dir := Dir()
	v := viper.New()

	v.SetDefault("locale", "en-US")
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("default_range", string(dataset.DefaultRange()))
	v.SetDefault("export_cooldown", transient.DefaultCooldown)
	v.SetDefault("preferences_path", filepath.Join(dir, "preferences.yaml"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dir, appName+".log"))
	v.SetDefault("log.json", false)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(fileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, apperrors.NewConfigError(path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigError(v.ConfigFileUsed(), err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Range returns the validated default range.
func (c *Config) Range() dataset.RangeKey {
	key, err := dataset.ParseRange(c.DefaultRange)
	if err != nil {
		return dataset.DefaultRange()
	}
	return key
}

// FormatLocale returns the formatter locale described by the config.
func (c *Config) FormatLocale() (format.Locale, error) {
	return format.ParseLocale(c.Locale, c.CurrencySymbol)
}
