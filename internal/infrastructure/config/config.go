package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full environment surface of the API server. The signing
// secret is required with no default; the service refuses to start without
// one. The seeding commands take their database path from the command line
// and do not load this struct.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DBPath           string        `env:"DB_PATH,            default=trademindiq.db"`
	JWTSecret        string        `env:"JWT_SECRET,         required"`
	TokenTTL         time.Duration `env:"TOKEN_TTL,          default=24h"`
	LoginLookupField string        `env:"LOGIN_LOOKUP_FIELD, default=email"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
