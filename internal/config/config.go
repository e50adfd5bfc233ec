package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Storage
	DBPath string `mapstructure:"INVTRACK_DB_PATH"`

	// Export
	ExportPath string `mapstructure:"INVTRACK_EXPORT_PATH"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for local use
	viper.SetDefault("INVTRACK_DB_PATH", "inventory.db")
	viper.SetDefault("INVTRACK_EXPORT_PATH", "inventory_export.csv")
	viper.SetDefault("LOG_LEVEL", "info")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
