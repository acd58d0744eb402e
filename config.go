package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full converter configuration, layered from defaults, the
// config file, FF_CONVERTER_* environment variables, and flags.
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig locates the export document and the legacy assets.
type SourceConfig struct {
	Input  string `mapstructure:"input"`
	Assets string `mapstructure:"assets"`
}

// FilterConfig selects which records to migrate.
type FilterConfig struct {
	Years    []int `mapstructure:"years"`
	Category int   `mapstructure:"category"`
}

// OutputConfig controls the destination tree and run behavior.
type OutputConfig struct {
	Root              string `mapstructure:"root"`
	SkipExistingYears bool   `mapstructure:"skip_existing_years"`
	Colors            bool   `mapstructure:"colors"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file and environment variables.
// A missing config file is fine; everything has a default.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ff-website-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/ff-website-converter")
	}

	viper.SetEnvPrefix("FF_CONVERTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so environment variables and flags layer
// in even without a config file.
func setDefaults() {
	viper.SetDefault("source.input", "input.json")
	viper.SetDefault("source.assets", "")

	viper.SetDefault("filter.years", []int{})
	viper.SetDefault("filter.category", 5)

	viper.SetDefault("output.root", ".")
	viper.SetDefault("output.skip_existing_years", false)
	viper.SetDefault("output.colors", true)

	viper.SetDefault("logging.level", "info")
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	for _, year := range cfg.Filter.Years {
		if year <= 0 {
			return fmt.Errorf("invalid migration year: %d", year)
		}
	}

	return nil
}

// ValidateForMigration checks the settings only the migration run needs.
// Read-only commands like stats and inspect work without them.
func (c *Config) ValidateForMigration() error {
	if len(c.Filter.Years) == 0 {
		return fmt.Errorf("no years configured: set filter.years or pass --years")
	}
	if c.Source.Assets == "" {
		return fmt.Errorf("no legacy asset root configured: set source.assets or pass --assets")
	}
	return nil
}
