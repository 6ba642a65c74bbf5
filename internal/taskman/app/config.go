package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer              string        // Required: issuer claim for tokens
	TokenTTL            time.Duration // Optional: bearer token lifetime (default: 7 days)
	SecretFile          string        // Optional: path to token signing secret file (default: ./secret)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./taskman.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Load .env if present; real env vars win over file values.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              os.Getenv("TASKMAN_ISSUER"),
		TokenTTL:            getEnvDurationOrDefault("TASKMAN_TOKEN_TTL", 7*24*time.Hour),
		SecretFile:          getEnvOrDefault("TASKMAN_SECRET_FILE", "secret"),
		DatabaseFile:        getEnvOrDefault("TASKMAN_DATABASE_FILE", "taskman.db"),
		PepperFile:          getEnvOrDefault("TASKMAN_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "taskman"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
