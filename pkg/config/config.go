package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// DatabaseURL selects the PostgreSQL adapter when set; otherwise the
	// SQLite file at DatabasePath is used.
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database.db"`

	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret  string `env:"JWT_SECRET,required"`

	MetricsPort  string `env:"METRICS_PORT" envDefault:"9091"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`

	RateLimitEnabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`

	SQLiteMigrationsPath   string `env:"MIGRATIONS_PATH" envDefault:"db/migrations"`
	PostgresMigrationsPath string `env:"PG_MIGRATIONS_PATH" envDefault:"infra/migrations"`
}

// Load reads configuration from the environment, pulling in a local .env
// file first when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &cfg, nil
}

func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}
