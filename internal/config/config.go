package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotenvFile = ".mcp_env"

type Config struct {
	GithubToken string `env:"MCP_GITHUB_TOKEN,required,notEmpty"`
	Org         string `env:"GITHUB_EVAL_ORG,required,notEmpty"`
}

// Load reads credentials from .mcp_env (when present) and the process
// environment. Missing or empty values fail here, before any API client is
// constructed.
func Load() (*Config, error) {
	// The dotenv file is optional; exported variables win either way.
	_ = godotenv.Load(dotenvFile)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
