// Package config loads scorekit configuration from rc files, environment,
// and flags via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the scorekit configuration.
type Config struct {
	TemplatesDir string      `mapstructure:"templatesDir"`
	Format       string      `mapstructure:"format"`
	Output       string      `mapstructure:"output"`
	Quiet        bool        `mapstructure:"quiet"`
	Verbose      bool        `mapstructure:"verbose"`
	Store        StoreConfig `mapstructure:"store"`
	Serve        ServeConfig `mapstructure:"serve"`
	CRM          CRMConfig   `mapstructure:"crm"`
}

// StoreConfig selects and configures the report store driver.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory, file, redis
	Path   string `mapstructure:"path"`   // file driver: directory for report blobs
	Addr   string `mapstructure:"addr"`   // redis driver: host:port
}

// ServeConfig configures the HTTP service.
type ServeConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// CRMConfig configures the optional CRM integration. An empty APIKey
// disables it.
type CRMConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

// LoadConfig loads configuration from rc files, environment variables, and
// any flags already bound into viper.
func LoadConfig() (*Config, error) {
	viper.SetDefault("templatesDir", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.path", ".scorekit/reports")
	viper.SetDefault("store.addr", "localhost:6379")
	viper.SetDefault("serve.host", "localhost")
	viper.SetDefault("serve.port", 8090)
	viper.SetDefault("crm.baseUrl", "https://api.msgsndr.com")

	// Config file locations
	configPaths := []string{".scorekitrc.json", ".scorekitrc.yaml", ".scorekitrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("SCOREKIT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	switch config.Store.Driver {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("invalid store driver: %s. Must be 'memory', 'file', or 'redis'", config.Store.Driver)
	}

	if config.Serve.Port <= 0 || config.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve port: %d", config.Serve.Port)
	}

	return nil
}
