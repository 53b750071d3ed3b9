package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "secret.key", cfg.SecretKeyPath)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "secretkey", cfg.MetricsNamespace)
				assert.Empty(t, cfg.MetricsTextfilePath)
			},
		},
		{
			name: "load custom secret key path",
			envVars: map[string]string{
				"SECRET_KEY_PATH": "/var/lib/app/secret.key",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/lib/app/secret.key", cfg.SecretKeyPath)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":       "true",
				"METRICS_NAMESPACE":     "custom",
				"METRICS_TEXTFILE_PATH": "/var/lib/node_exporter/secretkey.prom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "custom", cfg.MetricsNamespace)
				assert.Equal(t, "/var/lib/node_exporter/secretkey.prom", cfg.MetricsTextfilePath)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".env"),
		[]byte("SECRET_KEY_PATH=from-dotenv.key\nLOG_LEVEL=warn\n"),
		0o600,
	))

	os.Clearenv()
	t.Chdir(nested)

	t.Run("values are found in a parent directory", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "from-dotenv.key", cfg.SecretKeyPath)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("environment takes precedence over .env", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("SECRET_KEY_PATH", "from-env.key"))

		cfg := Load()

		assert.Equal(t, "from-env.key", cfg.SecretKeyPath)
	})
}
