// Package usecase defines the business logic for key management and text encryption.
//
// The secret key use case owns the lifecycle of the managed secret key file. The
// cipher use case encrypts and decrypts text with either an explicit EncodedKey or
// the managed key obtained from the secret key use case.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// SecretKeyRepository defines the interface for secret key persistence.
//
// Available implementations:
//   - FileSecretKeyRepository: stores the key as the entire content of one file
type SecretKeyRepository interface {
	// CreateIfNotExists stores key unless a key is already stored.
	// Reports whether this call stored it. An existing key is never overwritten.
	CreateIfNotExists(ctx context.Context, key cryptoDomain.EncodedKey) (bool, error)

	// Get returns the stored key verbatim, possibly empty.
	Get(ctx context.Context) (cryptoDomain.EncodedKey, error)
}

// SecretKeyUseCase defines the interface for accessing the managed secret key.
type SecretKeyUseCase interface {
	// Read returns the persisted secret key, generating and persisting one first
	// if none exists. Failures to create or read the key surface as ErrKeyUnavailable.
	Read(ctx context.Context) (cryptoDomain.EncodedKey, error)
}

// CipherUseCase defines the interface for encrypting and decrypting text.
type CipherUseCase interface {
	// NormalizeAndEncode turns a passphrase into an EncodedKey usable by Encrypt and Decrypt.
	NormalizeAndEncode(passphrase string) cryptoDomain.EncodedKey

	// Encrypt encrypts the UTF-8 bytes of plaintext with key.
	Encrypt(ctx context.Context, plaintext string, key cryptoDomain.EncodedKey) (cryptoDomain.Ciphertext, error)

	// Decrypt recovers the plaintext encrypted with key.
	Decrypt(ctx context.Context, ciphertext cryptoDomain.Ciphertext, key cryptoDomain.EncodedKey) (string, error)

	// EncryptWithSecretKey encrypts plaintext with the managed secret key.
	EncryptWithSecretKey(ctx context.Context, plaintext string) (cryptoDomain.Ciphertext, error)

	// DecryptWithSecretKey decrypts ciphertext with the managed secret key.
	DecryptWithSecretKey(ctx context.Context, ciphertext cryptoDomain.Ciphertext) (string, error)
}
