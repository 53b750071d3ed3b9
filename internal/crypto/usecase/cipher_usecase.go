package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoService "github.com/allisson/secretkey/internal/crypto/service"
	customValidation "github.com/allisson/secretkey/internal/validation"
)

// cipherUseCase implements CipherUseCase on top of a BlockCipher.
//
// Keys and ciphertexts cross the boundary base64-encoded. Cryptographic failures
// are returned immediately and never retried.
type cipherUseCase struct {
	blockCipher cryptoService.BlockCipher
	secretKeys  SecretKeyUseCase
}

// NewCipherUseCase creates a new CipherUseCase.
// secretKeys backs the implicit-key methods and may be nil when only explicit keys are used.
func NewCipherUseCase(blockCipher cryptoService.BlockCipher, secretKeys SecretKeyUseCase) CipherUseCase {
	return &cipherUseCase{
		blockCipher: blockCipher,
		secretKeys:  secretKeys,
	}
}

// NormalizeAndEncode truncates or pads the passphrase to KeySize bytes and encodes it.
func (c *cipherUseCase) NormalizeAndEncode(passphrase string) cryptoDomain.EncodedKey {
	return cryptoDomain.NormalizeKey(passphrase).Encode()
}

// Encrypt encrypts plaintext with key.
// Returns ErrInvalidKey if key is not the base64 form of a KeySize-byte key.
func (c *cipherUseCase) Encrypt(
	ctx context.Context,
	plaintext string,
	key cryptoDomain.EncodedKey,
) (cryptoDomain.Ciphertext, error) {
	rawKey, err := decodeKey(key)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(rawKey)

	raw, err := c.blockCipher.Encrypt([]byte(plaintext), rawKey)
	if err != nil {
		return "", err
	}

	return cryptoDomain.EncodeCiphertext(raw), nil
}

// Decrypt decrypts ciphertext with key.
//
// Returns ErrInvalidKey for a malformed key, ErrInvalidCiphertext for malformed
// base64, misaligned blocks or bad padding, and ErrDecode when the recovered
// bytes are not valid UTF-8.
func (c *cipherUseCase) Decrypt(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
	key cryptoDomain.EncodedKey,
) (string, error) {
	if err := validation.Validate(
		string(ciphertext),
		validation.Required,
		customValidation.Base64,
	); err != nil {
		return "", customValidation.WrapValidationError(err, cryptoDomain.ErrInvalidCiphertext)
	}

	rawCiphertext, err := ciphertext.Decode()
	if err != nil {
		return "", err
	}

	rawKey, err := decodeKey(key)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(rawKey)

	plaintext, err := c.blockCipher.Decrypt(rawCiphertext, rawKey)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", cryptoDomain.ErrDecode
	}

	return string(plaintext), nil
}

// EncryptWithSecretKey encrypts plaintext with the managed secret key.
// Returns ErrNoSecretKeyAvailable if the stored key is empty.
func (c *cipherUseCase) EncryptWithSecretKey(
	ctx context.Context,
	plaintext string,
) (cryptoDomain.Ciphertext, error) {
	key, err := c.secretKey(ctx)
	if err != nil {
		return "", err
	}
	return c.Encrypt(ctx, plaintext, key)
}

// DecryptWithSecretKey decrypts ciphertext with the managed secret key.
// Returns ErrNoSecretKeyAvailable if the stored key is empty.
func (c *cipherUseCase) DecryptWithSecretKey(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
) (string, error) {
	key, err := c.secretKey(ctx)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ctx, ciphertext, key)
}

// secretKey fetches the managed key and rejects an empty one.
func (c *cipherUseCase) secretKey(ctx context.Context) (cryptoDomain.EncodedKey, error) {
	if c.secretKeys == nil {
		return "", cryptoDomain.ErrNoSecretKeyAvailable
	}

	key, err := c.secretKeys.Read(ctx)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", cryptoDomain.ErrNoSecretKeyAvailable
	}

	return key, nil
}

// decodeKey validates an EncodedKey and returns its raw bytes.
func decodeKey(key cryptoDomain.EncodedKey) (cryptoDomain.Key, error) {
	if err := validation.Validate(
		string(key),
		validation.Required,
		customValidation.NoWhitespace,
		customValidation.Base64,
		customValidation.Base64DecodedLength(cryptoDomain.KeySize),
	); err != nil {
		return nil, customValidation.WrapValidationError(err, cryptoDomain.ErrInvalidKey)
	}

	rawKey, err := key.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}

	return rawKey, nil
}
