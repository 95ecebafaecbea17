package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     []byte
	JWTExpiration time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required.
func Load() (Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}

	expiration := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRE"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JWT_EXPIRE %q: %w", raw, err)
		}
		expiration = parsed
	}

	return Config{
		Port:          port,
		DatabaseURL:   databaseURL,
		JWTSecret:     []byte(secret),
		JWTExpiration: expiration,
	}, nil
}
