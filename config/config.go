package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the .env file if present.
func LoadEnv() error {
	return godotenv.Load()
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the value of key, or fallback when unset.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
