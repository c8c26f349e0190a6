package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	AppEnv      string        `envconfig:"APP_ENV" default:"dev"`
	Port        string        `envconfig:"PORT" default:"8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" default:"serveez.db"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}
