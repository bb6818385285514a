package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SessionConfig struct {
	File string `mapstructure:"file"`
	// UserID seeds a fresh session file. It is deliberately visible here
	// rather than hidden as a fallback inside the transport.
	UserID string `mapstructure:"user_id"`
}

type MockConfig struct {
	Port int `mapstructure:"port"`
}

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// Load reads config.yaml (working directory or ./config), then applies
// CONSOLE_* environment overrides. A missing file is fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("api.base_url", "http://localhost:8080/api/super-admin")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.requests_per_second", 10.0)
	v.SetDefault("api.burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("session.file", ".panadol-session.json")
	v.SetDefault("session.user_id", "1")
	v.SetDefault("mock.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("console", &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	return &cfg, nil
}
