package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// Every field has a default, so the planner runs with no environment at all.
type Config struct {
	DataDir  string
	LogLevel string

	MaxTransactionAttempts int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataDir:  getEnv("HOLIDAY_DATA_DIR", "local_database"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "warn")),

		MaxTransactionAttempts: getEnvInt("TXN_MAX_ATTEMPTS", 1000),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
