package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over .env entries (godotenv does not override existing ones).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.AuthEndpoint = getEnv("MESTO_AUTH_ENDPOINT", cfg.AuthEndpoint)
	cfg.APIEndpoint = getEnv("MESTO_API_ENDPOINT", cfg.APIEndpoint)
	cfg.APIAuthorization = getEnv("MESTO_API_AUTHORIZATION", cfg.APIAuthorization)
	cfg.DatabaseDSN = getEnv("MESTO_DATABASE_DSN", cfg.DatabaseDSN)
	cfg.LogLevel = getEnv("MESTO_LOG_LEVEL", cfg.LogLevel)
}

// getEnv returns the variable's value, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
