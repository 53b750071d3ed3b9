package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// CryptoMetrics defines the interface for recording cipher operation metrics.
type CryptoMetrics interface {
	// RecordOperation records one operation with its status.
	// Operation examples: "encrypt", "decrypt_secret_key"
	RecordOperation(ctx context.Context, operation, status string)

	// RecordDuration records the duration of an operation in seconds as a histogram.
	RecordDuration(ctx context.Context, operation string, duration time.Duration, status string)
}

// cryptoMetrics implements CryptoMetrics using OpenTelemetry metrics.
type cryptoMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewCryptoMetrics creates a CryptoMetrics implementation using the provided meter provider.
// The namespace parameter prefixes all metric names (e.g., "secretkey").
func NewCryptoMetrics(meterProvider metric.MeterProvider, namespace string) (CryptoMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_crypto_operations_total", namespace),
		metric.WithDescription("Total number of cipher and key operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_crypto_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of cipher and key operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &cryptoMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

// RecordOperation increments the operation counter with operation and status labels.
func (c *cryptoMetrics) RecordOperation(ctx context.Context, operation, status string) {
	c.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds with operation and status labels.
func (c *cryptoMetrics) RecordDuration(
	ctx context.Context,
	operation string,
	duration time.Duration,
	status string,
) {
	c.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// NoOpCryptoMetrics is a no-op implementation of CryptoMetrics for when metrics are disabled.
type NoOpCryptoMetrics struct{}

// NewNoOpCryptoMetrics creates a no-op CryptoMetrics implementation.
func NewNoOpCryptoMetrics() CryptoMetrics {
	return &NoOpCryptoMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpCryptoMetrics) RecordOperation(ctx context.Context, operation, status string) {}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpCryptoMetrics) RecordDuration(
	ctx context.Context,
	operation string,
	duration time.Duration,
	status string,
) {
}
