package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from WARLON_* environment variables, with a .env file
// loaded first for local runs. Username and password are optional; when
// both are set every new session auto-logs-in with them.
type Config struct {
	Port        string        `default:"8080"`
	LogLevel    string        `split_words:"true" default:"info"`
	BaseURL     string        `split_words:"true" default:"https://customer.warloncatering.com"`
	Username    string
	Password    string
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("warlon", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
