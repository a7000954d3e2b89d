package config

import (
	"github.com/caarlos0/env/v11"

	"adpilot/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are parsed with their envPrefix. See the configs package for
// defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis       configs.Redis       `envPrefix:"REDIS_"`
	Graph       configs.Graph       `envPrefix:"GRAPH_"`
	Interpreter configs.Interpreter `envPrefix:"INTERPRETER_"`
	Dialogue    configs.Dialogue    `envPrefix:"DIALOGUE_"`
	Queue       configs.Queue       `envPrefix:"QUEUE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
