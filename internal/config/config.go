// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SecretKeyPath is the file holding the managed secret key.
	SecretKeyPath string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfilePath is where metrics are written on shutdown, in Prometheus text format.
	// Empty disables the export.
	MetricsTextfilePath string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Secret key store
		SecretKeyPath: env.GetString("SECRET_KEY_PATH", "secret.key"),

		// Metrics
		MetricsEnabled:      env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:    env.GetString("METRICS_NAMESPACE", "secretkey"),
		MetricsTextfilePath: env.GetString("METRICS_TEXTFILE_PATH", ""),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
