// Package mocks provides mock implementations of the crypto use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// MockSecretKeyRepository is a mock implementation of usecase.SecretKeyRepository.
type MockSecretKeyRepository struct {
	mock.Mock
}

// CreateIfNotExists mocks the CreateIfNotExists method of SecretKeyRepository.
func (m *MockSecretKeyRepository) CreateIfNotExists(
	ctx context.Context,
	key cryptoDomain.EncodedKey,
) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Get mocks the Get method of SecretKeyRepository.
func (m *MockSecretKeyRepository) Get(ctx context.Context) (cryptoDomain.EncodedKey, error) {
	args := m.Called(ctx)
	return args.Get(0).(cryptoDomain.EncodedKey), args.Error(1)
}

// MockSecretKeyUseCase is a mock implementation of usecase.SecretKeyUseCase.
type MockSecretKeyUseCase struct {
	mock.Mock
}

// Read mocks the Read method of SecretKeyUseCase.
func (m *MockSecretKeyUseCase) Read(ctx context.Context) (cryptoDomain.EncodedKey, error) {
	args := m.Called(ctx)
	return args.Get(0).(cryptoDomain.EncodedKey), args.Error(1)
}

// MockCipherUseCase is a mock implementation of usecase.CipherUseCase.
type MockCipherUseCase struct {
	mock.Mock
}

// NormalizeAndEncode mocks the NormalizeAndEncode method of CipherUseCase.
func (m *MockCipherUseCase) NormalizeAndEncode(passphrase string) cryptoDomain.EncodedKey {
	args := m.Called(passphrase)
	return args.Get(0).(cryptoDomain.EncodedKey)
}

// Encrypt mocks the Encrypt method of CipherUseCase.
func (m *MockCipherUseCase) Encrypt(
	ctx context.Context,
	plaintext string,
	key cryptoDomain.EncodedKey,
) (cryptoDomain.Ciphertext, error) {
	args := m.Called(ctx, plaintext, key)
	return args.Get(0).(cryptoDomain.Ciphertext), args.Error(1)
}

// Decrypt mocks the Decrypt method of CipherUseCase.
func (m *MockCipherUseCase) Decrypt(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
	key cryptoDomain.EncodedKey,
) (string, error) {
	args := m.Called(ctx, ciphertext, key)
	return args.String(0), args.Error(1)
}

// EncryptWithSecretKey mocks the EncryptWithSecretKey method of CipherUseCase.
func (m *MockCipherUseCase) EncryptWithSecretKey(
	ctx context.Context,
	plaintext string,
) (cryptoDomain.Ciphertext, error) {
	args := m.Called(ctx, plaintext)
	return args.Get(0).(cryptoDomain.Ciphertext), args.Error(1)
}

// DecryptWithSecretKey mocks the DecryptWithSecretKey method of CipherUseCase.
func (m *MockCipherUseCase) DecryptWithSecretKey(
	ctx context.Context,
	ciphertext cryptoDomain.Ciphertext,
) (string, error) {
	args := m.Called(ctx, ciphertext)
	return args.String(0), args.Error(1)
}
