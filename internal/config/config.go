// Package config provides configuration management for the pricing application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Pricing    PricingConfig    `mapstructure:"pricing"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// PricingConfig holds defaults for contract parameters the CLI flags fall
// back to.
type PricingConfig struct {
	DefaultRiskFreeRate float64 `mapstructure:"default_risk_free_rate"`
	DefaultVolatility   float64 `mapstructure:"default_volatility"`
	DefaultTimeToExpiry float64 `mapstructure:"default_time_to_expiry"`
}

// SimulationConfig holds Monte Carlo configuration.
type SimulationConfig struct {
	NumSimulations int   `mapstructure:"num_simulations"`
	Seed           int64 `mapstructure:"seed"` // 0 means fresh randomness per call
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pricing: PricingConfig{
			DefaultRiskFreeRate: 0.05,
			DefaultVolatility:   0.25,
			DefaultTimeToExpiry: 1.0,
		},
		Simulation: SimulationConfig{
			NumSimulations: 100000,
			Seed:           0,
		},
		UI: UIConfig{
			ColorEnabled: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    false,
		},
	}
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/options-pricer"
	}
	return filepath.Join(home, ".config", "options-pricer")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PRICER_RISK_FREE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.DefaultRiskFreeRate = rate
		}
	}
	if v := os.Getenv("PRICER_SIMULATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.NumSimulations = n
		}
	}
	if v := os.Getenv("PRICER_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulation.Seed = seed
		}
	}
	if v := os.Getenv("PRICER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pricing.DefaultVolatility <= 0 {
		return fmt.Errorf("default_volatility must be positive")
	}
	if c.Pricing.DefaultTimeToExpiry <= 0 {
		return fmt.Errorf("default_time_to_expiry must be positive")
	}
	// Sample variance needs at least 2 draws
	if c.Simulation.NumSimulations < 2 {
		return fmt.Errorf("num_simulations must be at least 2")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
