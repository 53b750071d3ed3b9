package domain

import (
	"github.com/allisson/secretkey/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so the
// CLI can classify a failure without knowing which component raised it.
var (
	// ErrInvalidKey indicates an EncodedKey is not valid base64 or does not decode
	// to exactly KeySize bytes.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrInvalidCiphertext indicates a ciphertext is not valid base64, is not aligned
	// to the cipher block size, or carries malformed padding after decryption.
	//
	// A wrong key almost always surfaces as this error because the recovered padding
	// does not validate.
	ErrInvalidCiphertext = errors.Wrap(errors.ErrInvalidInput, "invalid ciphertext")

	// ErrDecode indicates the decrypted bytes are not valid UTF-8 text.
	ErrDecode = errors.Wrap(errors.ErrInvalidInput, "decrypted data is not valid utf-8")

	// ErrNoSecretKeyAvailable indicates an implicit-key operation was requested but
	// the secret key file holds no key.
	ErrNoSecretKeyAvailable = errors.Wrap(
		errors.ErrPreconditionFailed,
		"no secret key available (secret key file missing or empty)",
	)

	// ErrKeyUnavailable indicates the secret key file could not be created or read.
	ErrKeyUnavailable = errors.Wrap(errors.ErrUnavailable, "secret key unavailable")
)
