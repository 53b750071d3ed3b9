package service

import (
	"bytes"
	"crypto/aes"
	"fmt"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// AESECBCipher implements the BlockCipher interface using AES-128 in ECB mode
// with PKCS#7 padding.
//
// The mode is kept so ciphertext produced by existing deployments stays readable.
// ECB has no initialization vector: the same plaintext and key always yield the
// same ciphertext, and equal plaintext blocks produce equal ciphertext blocks.
// There is no integrity protection either. Do not use it for new data that needs
// confidentiality against an active or observant attacker.
//
// Thread safety:
//
//	The cipher holds no state and is safe for concurrent use.
type AESECBCipher struct{}

// NewAESECB creates a new AES-128-ECB cipher.
func NewAESECB() *AESECBCipher {
	return &AESECBCipher{}
}

// Encrypt pads plaintext with PKCS#7 and encrypts it block by block.
// An empty plaintext produces one full block of padding.
// Returns ErrInvalidKey if the key is not KeySize bytes.
func (c *AESECBCipher) Encrypt(plaintext []byte, key cryptoDomain.Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", cryptoDomain.ErrInvalidKey, cryptoDomain.KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKey, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	for start := 0; start < len(padded); start += aes.BlockSize {
		block.Encrypt(ciphertext[start:start+aes.BlockSize], padded[start:start+aes.BlockSize])
	}

	return ciphertext, nil
}

// Decrypt decrypts ciphertext block by block and removes the PKCS#7 padding.
//
// Returns ErrInvalidKey if the key is not KeySize bytes, and ErrInvalidCiphertext
// if the input is empty, not block aligned, or the recovered padding is malformed.
// A wrong key is reported as ErrInvalidCiphertext in almost every case.
func (c *AESECBCipher) Decrypt(ciphertext []byte, key cryptoDomain.Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", cryptoDomain.ErrInvalidKey, cryptoDomain.KeySize, len(key))
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf(
			"%w: length %d is not a positive multiple of %d",
			cryptoDomain.ErrInvalidCiphertext,
			len(ciphertext),
			aes.BlockSize,
		)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKey, err)
	}

	plaintext := make([]byte, len(ciphertext))
	for start := 0; start < len(ciphertext); start += aes.BlockSize {
		block.Decrypt(plaintext[start:start+aes.BlockSize], ciphertext[start:start+aes.BlockSize])
	}

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		cryptoDomain.Zero(plaintext)
		return nil, err
	}

	return unpadded, nil
}

// pkcs7Pad appends between 1 and blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+padLen)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: bad padding", cryptoDomain.ErrInvalidCiphertext)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: bad padding", cryptoDomain.ErrInvalidCiphertext)
		}
	}

	return data[:len(data)-padLen], nil
}
