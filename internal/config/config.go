package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"spendguard/internal/config/configs"
)

// Config is the process configuration, read from the environment by Load.
// Each section parses under its envPrefix; defaults live on the configs types.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the admin HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the repository backend.
	Store configs.Store `envPrefix:"STORE_"`

	// Redis configures the cross-replica campaign lock. An empty address
	// disables it.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// AdNetwork configures the remote ad network client.
	AdNetwork configs.AdNetwork `envPrefix:"ADNET_"`

	// Controller holds the state machine timings and default thresholds.
	Controller configs.Controller `envPrefix:"CONTROLLER_"`

	// Metrics configures the Prometheus collectors.
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// ErrInvalid wraps every semantic configuration error returned by Load.
var ErrInvalid = errors.New("invalid configuration")

// Load parses the environment into a Config and rejects values the process
// cannot start with.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	driver := strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if driver != configs.StoreDriverMemory && driver != configs.StoreDriverPostgres {
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalid, c.Store.Driver)
	}
	if !c.Controller.HighSpendBoundary.IsPositive() {
		return fmt.Errorf("%w: high spend boundary must be positive", ErrInvalid)
	}
	if c.Redis.Enabled() && c.Redis.LockTTL <= c.Controller.TickTimeout {
		return fmt.Errorf("%w: redis lock ttl %s must exceed tick timeout %s", ErrInvalid, c.Redis.LockTTL, c.Controller.TickTimeout)
	}
	if c.AdNetwork.BaseURL == "" {
		return fmt.Errorf("%w: ad network base url is empty", ErrInvalid)
	}
	return nil
}
