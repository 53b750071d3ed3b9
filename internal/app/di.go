// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/secretkey/internal/config"
	cryptoService "github.com/allisson/secretkey/internal/crypto/service"
	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
	"github.com/allisson/secretkey/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	cryptoMetrics   metrics.CryptoMetrics

	// Services
	keyGenerator cryptoService.KeyGenerator
	blockCipher  cryptoService.BlockCipher

	// Repositories
	secretKeyRepository cryptoUseCase.SecretKeyRepository

	// Use Cases
	secretKeyUseCase cryptoUseCase.SecretKeyUseCase
	cipherUseCase    cryptoUseCase.CipherUseCase

	// Initialization flags and mutex for thread-safety
	mu                      sync.Mutex
	loggerInit              sync.Once
	metricsProviderInit     sync.Once
	cryptoMetricsInit       sync.Once
	keyGeneratorInit        sync.Once
	blockCipherInit         sync.Once
	secretKeyRepositoryInit sync.Once
	secretKeyUseCaseInit    sync.Once
	cipherUseCaseInit       sync.Once
	initErrors              map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.getInitError("metricsProvider"); exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// CryptoMetrics returns the cipher operation metrics recorder.
func (c *Container) CryptoMetrics() (metrics.CryptoMetrics, error) {
	var err error
	c.cryptoMetricsInit.Do(func() {
		c.cryptoMetrics, err = c.initCryptoMetrics()
		if err != nil {
			c.setInitError("cryptoMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.getInitError("cryptoMetrics"); exists {
		return nil, storedErr
	}
	return c.cryptoMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		// Export before shutdown, the provider drops its readers afterwards
		if path := c.config.MetricsTextfilePath; path != "" {
			if err := c.metricsProvider.WriteToTextfile(path); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics export: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) getInitError(name string) (error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err, exists := c.initErrors[name]
	return err, exists
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the metrics provider if metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initCryptoMetrics creates the metrics recorder, falling back to a no-op one when disabled.
func (c *Container) initCryptoMetrics() (metrics.CryptoMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for crypto metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpCryptoMetrics(), nil
	}

	cryptoMetrics, err := metrics.NewCryptoMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto metrics: %w", err)
	}
	return cryptoMetrics, nil
}
