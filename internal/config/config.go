package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	AllowedOrigin  string `env:"ALLOWED_ORIGIN" envDefault:"*"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"` // 10 MiB
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}
	return cfg, nil
}
