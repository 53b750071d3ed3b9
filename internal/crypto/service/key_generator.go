package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// secretKeyInfo binds derived keys to their purpose.
var secretKeyInfo = []byte("secretkey/aes-128")

// HKDFKeyGenerator implements the KeyGenerator interface.
//
// Each key is derived from SeedSize bytes of fresh seed material expanded with
// HKDF-SHA256. The seed is zeroed once the key has been derived.
type HKDFKeyGenerator struct {
	random io.Reader
}

// NewKeyGenerator creates a key generator backed by crypto/rand.
func NewKeyGenerator() *HKDFKeyGenerator {
	return &HKDFKeyGenerator{random: rand.Reader}
}

// NewKeyGeneratorWithReader creates a key generator that reads its seed from r.
// Intended for tests that need reproducible keys.
func NewKeyGeneratorWithReader(r io.Reader) *HKDFKeyGenerator {
	return &HKDFKeyGenerator{random: r}
}

// Generate returns a new KeySize-byte key.
func (g *HKDFKeyGenerator) Generate() (cryptoDomain.Key, error) {
	seed := make([]byte, cryptoDomain.SeedSize)
	defer cryptoDomain.Zero(seed)

	if _, err := io.ReadFull(g.random, seed); err != nil {
		return nil, fmt.Errorf("failed to read seed material: %w", err)
	}

	key := make(cryptoDomain.Key, cryptoDomain.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, seed, nil, secretKeyInfo), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
