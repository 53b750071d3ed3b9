// Package service provides the cryptographic primitives behind the cipher use cases:
// the AES block cipher and secret key generation.
package service

import (
	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// BlockCipher defines the interface for a deterministic symmetric block cipher.
type BlockCipher interface {
	// Encrypt pads and encrypts plaintext with key.
	Encrypt(plaintext []byte, key cryptoDomain.Key) ([]byte, error)

	// Decrypt decrypts ciphertext with key and strips its padding.
	Decrypt(ciphertext []byte, key cryptoDomain.Key) ([]byte, error)
}

// KeyGenerator defines the interface for producing fresh random keys.
type KeyGenerator interface {
	// Generate returns a new KeySize-byte key.
	Generate() (cryptoDomain.Key, error)
}
