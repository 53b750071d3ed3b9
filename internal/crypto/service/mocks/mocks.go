// Package mocks provides mock implementations of the crypto services for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// MockKeyGenerator is a mock implementation of service.KeyGenerator.
type MockKeyGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of KeyGenerator.
func (m *MockKeyGenerator) Generate() (cryptoDomain.Key, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.Key), args.Error(1)
}

// MockBlockCipher is a mock implementation of service.BlockCipher.
type MockBlockCipher struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of BlockCipher.
func (m *MockBlockCipher) Encrypt(plaintext []byte, key cryptoDomain.Key) ([]byte, error) {
	args := m.Called(plaintext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of BlockCipher.
func (m *MockBlockCipher) Decrypt(ciphertext []byte, key cryptoDomain.Key) ([]byte, error) {
	args := m.Called(ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
