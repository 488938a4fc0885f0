// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every recognized option.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"APP_PORT,default=8080"`

	// DataDir is the root of the blob store; uploads live in
	// <DataDir>/uploads/<collection>.
	DataDir string `env:"DATA_DIR,default=."`

	// DefaultPfpPath is the sentinel profile-picture reference substituted
	// for users and listings that never uploaded one.
	DefaultPfpPath string `env:"DEFAULT_PFP_PATH,default=uploads/user_profile/default_pfp.png"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
}

// Load reads .env if present, then decodes the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
