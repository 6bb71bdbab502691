// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the HTTP and MCP entry points. An empty
// DBDSN selects the in-memory store, which is enough for local play.
type Config struct {
	DBDSN         string `env:"CHATAGOTCHI_DB_DSN"`
	HTTPAddr      string `env:"CHATAGOTCHI_HTTP_ADDR" envDefault:":8080"`
	MigrationsDir string `env:"CHATAGOTCHI_MIGRATIONS_DIR" envDefault:"./migrations"`

	// MCP settings. Stdio serves a single player identified by MCPUserID.
	MCPTransport string `env:"CHATAGOTCHI_MCP_TRANSPORT" envDefault:"stdio"`
	MCPHTTPAddr  string `env:"CHATAGOTCHI_MCP_HTTP_ADDR" envDefault:"127.0.0.1:8081"`
	MCPUserID    string `env:"CHATAGOTCHI_MCP_USER_ID" envDefault:"demo-player"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
