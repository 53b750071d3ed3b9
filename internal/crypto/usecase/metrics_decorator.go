package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	"github.com/allisson/secretkey/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.CryptoMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.CryptoMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// NormalizeAndEncode delegates without recording; normalization cannot fail.
func (c *cipherUseCaseWithMetrics) NormalizeAndEncode(passphrase string) cryptoDomain.EncodedKey {
	return c.next.NormalizeAndEncode(passphrase)
}

// Encrypt records metrics for explicit-key encryption.
func (c *cipherUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	plaintext string,
	key cryptoDomain.EncodedKey,
) (cryptoDomain.Ciphertext, error) {
	start := time.Now()
	ciphertext, err := c.next.Encrypt(ctx, plaintext, key)
	c.record(ctx, "encrypt", start, err)
	return ciphertext, err
}

// Decrypt records metrics for explicit-key decryption.
func (c *cipherUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
	key cryptoDomain.EncodedKey,
) (string, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, ciphertext, key)
	c.record(ctx, "decrypt", start, err)
	return plaintext, err
}

// EncryptWithSecretKey records metrics for managed-key encryption.
func (c *cipherUseCaseWithMetrics) EncryptWithSecretKey(
	ctx context.Context,
	plaintext string,
) (cryptoDomain.Ciphertext, error) {
	start := time.Now()
	ciphertext, err := c.next.EncryptWithSecretKey(ctx, plaintext)
	c.record(ctx, "encrypt_secret_key", start, err)
	return ciphertext, err
}

// DecryptWithSecretKey records metrics for managed-key decryption.
func (c *cipherUseCaseWithMetrics) DecryptWithSecretKey(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
) (string, error) {
	start := time.Now()
	plaintext, err := c.next.DecryptWithSecretKey(ctx, ciphertext)
	c.record(ctx, "decrypt_secret_key", start, err)
	return plaintext, err
}

func (c *cipherUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	c.metrics.RecordOperation(ctx, operation, status)
	c.metrics.RecordDuration(ctx, operation, time.Since(start), status)
}
