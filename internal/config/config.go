package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Env              string        `env:"ENV,default=development"`
	Port             int           `env:"PORT,default=9090"`
	MetricsPort      int           `env:"METRICS_PORT,default=9091"`
	DatabaseURL      string        `env:"DATABASE_CONNECTION_POOL_URL,required"`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS,default=16"`
	APIKeyHash       string        `env:"API_KEY_HASH"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when there is one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.DatabaseMaxConns < 1 {
		cfg.DatabaseMaxConns = 1
	}
	return &cfg, nil
}
