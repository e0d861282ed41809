package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
	Validation ValidationConfig `mapstructure:"validation"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port" envconfig:"SERVER_PORT"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" envconfig:"SERVER_TIMEOUT_SECONDS"`
}

// RedisConfig points the persistence mirror at its slot store. An empty URL
// selects the in-memory backend.
type RedisConfig struct {
	URL string `mapstructure:"url" envconfig:"REDIS_URL"`
}

type DashboardConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval" envconfig:"DASHBOARD_REFRESH_INTERVAL"`
	AlertLimit      int           `mapstructure:"alert_limit" envconfig:"DASHBOARD_ALERT_LIMIT"`
	RevenueDays     int           `mapstructure:"revenue_days" envconfig:"DASHBOARD_REVENUE_DAYS"`
	UpcomingLimit   int           `mapstructure:"upcoming_limit" envconfig:"DASHBOARD_UPCOMING_LIMIT"`
}

// ValidationConfig toggles admission validation at the mutation boundary.
// Off by default: historically the UI layer was trusted with input checking.
type ValidationConfig struct {
	Enforce bool `mapstructure:"enforce" envconfig:"VALIDATION_ENFORCE"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	var config Config
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults plus env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Environment overrides
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Dashboard.RefreshInterval == 0 {
		c.Dashboard.RefreshInterval = 5 * time.Minute
	}
	if c.Dashboard.AlertLimit == 0 {
		c.Dashboard.AlertLimit = 5
	}
	if c.Dashboard.RevenueDays == 0 {
		c.Dashboard.RevenueDays = 7
	}
	if c.Dashboard.UpcomingLimit == 0 {
		c.Dashboard.UpcomingLimit = 5
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 50
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 100
	}
}
