package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variable overrides, e.g. KCVV_SERVER_PORT=9090
		viper.SetEnvPrefix("KCVV")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("cms.base_url") == "" {
		return fmt.Errorf("cms.base_url must be configured")
	}

	// Auto-correct out-of-range pagination settings
	if viper.GetInt("cms.page_size") <= 0 {
		viper.Set("cms.page_size", 50)
	}
	if viper.GetInt("cms.max_pages") <= 0 {
		viper.Set("cms.max_pages", 20)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.CMS.BaseURL == "" {
		return fmt.Errorf("cms.base_url must be configured")
	}

	if c.CMS.PageSize <= 0 {
		c.CMS.PageSize = 50
	}
	if c.CMS.MaxPages <= 0 {
		c.CMS.MaxPages = 20
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// CMS defaults
	viper.SetDefault("cms.base_url", "https://cms.kcvvelewijt.be")
	viper.SetDefault("cms.access_token", "")
	viper.SetDefault("cms.timeout", 10*time.Second)
	viper.SetDefault("cms.page_size", 50)
	viper.SetDefault("cms.max_pages", 20)
	viper.SetDefault("cms.people_cache_ttl", 5*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
}
