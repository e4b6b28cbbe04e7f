package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Note server and query engine
	Nb    NbConfig
	Query QueryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // requests per minute per client; 0 disables
}

type NbConfig struct {
	URL         string        // base URL of the nb web server, e.g. http://localhost:6789
	SearchPath  string        // search page path, e.g. "/home:"
	RowSelector string        // CSS selector of one result row
	Timeout     time.Duration // per search request; 0 means none
}

type QueryConfig struct {
	Timezone   string // IANA zone used to resolve date phrases and ranges
	DateLayout string // Go time layout for due dates in list output
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/nbq/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/nbq/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// nb
	cfg.Nb.URL = viper.GetString("nb.url")
	cfg.Nb.SearchPath = viper.GetString("nb.search_path")
	cfg.Nb.RowSelector = viper.GetString("nb.row_selector")
	cfg.Nb.Timeout = viper.GetDuration("nb.timeout")
	if nbURL := viper.GetString("nb_server_url"); nbURL != "" {
		cfg.Nb.URL = nbURL
	}

	// Query
	cfg.Query.Timezone = viper.GetString("query.timezone")
	cfg.Query.DateLayout = viper.GetString("query.date_layout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Nb.URL == "" {
		return fmt.Errorf("nb.url is required")
	}
	if !strings.HasPrefix(cfg.Nb.SearchPath, "/") {
		return fmt.Errorf("nb.search_path must start with /, got %q", cfg.Nb.SearchPath)
	}
	if _, err := time.LoadLocation(cfg.Query.Timezone); err != nil {
		return fmt.Errorf("invalid query.timezone %q: %w", cfg.Query.Timezone, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("nb.url", "http://localhost:6789")
	viper.SetDefault("nb.search_path", "/home:")
	viper.SetDefault("nb.row_selector", ".item-list a")
	viper.SetDefault("nb.timeout", "10s")

	viper.SetDefault("query.timezone", "UTC")
	viper.SetDefault("query.date_layout", "2006-01-02")
}
