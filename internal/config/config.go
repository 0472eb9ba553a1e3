package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Journal  Journal  `mapstructure:"journal"`
	Importer Importer `mapstructure:"importer"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
}

// Journal holds user-facing journal defaults.
type Journal struct {
	DefaultStrategy string `mapstructure:"default_strategy"`
	Currency        string `mapstructure:"currency"`
}

// Importer holds the configuration for CSV import and export download.
type Importer struct {
	SkipDuplicates bool    `mapstructure:"skip_duplicates"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is fine; defaults and environment cover it.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("journal.default_strategy", "Long Stock")
	viper.SetDefault("journal.currency", "USD")
	viper.SetDefault("importer.skip_duplicates", true)
	viper.SetDefault("importer.rate_limit", 2) // requests per second
	viper.SetDefault("importer.rate_limit_burst", 1)
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.dsn", "trades.db")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
