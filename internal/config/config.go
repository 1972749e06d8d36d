package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment. Flags in
// cmd/server override the port and DSN for local runs.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            int `env:"PORT" envDefault:"8080"`
		ReadTimeout     int `env:"READ_TIMEOUT" envDefault:"15"`
		WriteTimeout    int `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
	} `envPrefix:"SERVER_"`
	Store struct {
		// DSN ":memory:" keeps run history session-scoped, which is the
		// default posture for this calculator.
		DSN string `env:"DSN" envDefault:":memory:"`
	} `envPrefix:"STORE_"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
