package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoRepository "github.com/allisson/secretkey/internal/crypto/repository"
	cryptoService "github.com/allisson/secretkey/internal/crypto/service"
	serviceMocks "github.com/allisson/secretkey/internal/crypto/service/mocks"
	usecaseMocks "github.com/allisson/secretkey/internal/crypto/usecase/mocks"
	apperrors "github.com/allisson/secretkey/internal/errors"
	"github.com/allisson/secretkey/internal/testutil"
)

const (
	scenarioPassphrase = "PabloPicasso"
	scenarioPlaintext  = "rendez-vous à 06h30, amis de la pêche en Gruyère !"
	scenarioCiphertext = "bK1WPk9pkrLCwVzLbHqW/L/GCetfy+lstpvECgf/FuEYSIULeQjhnyOwUlKtZfMmeMAdohy7+VjB/lPbNZLedw=="
)

func newCipherUseCase(secretKeys SecretKeyUseCase) CipherUseCase {
	return NewCipherUseCase(cryptoService.NewAESECB(), secretKeys)
}

func TestCipherUseCase_NormalizeAndEncode(t *testing.T) {
	uc := newCipherUseCase(nil)

	assert.Equal(t, cryptoDomain.EncodedKey("UGFibG9QaWNhc3NvQ0RFRg=="), uc.NormalizeAndEncode(scenarioPassphrase))
	assert.Equal(t, uc.NormalizeAndEncode("same"), uc.NormalizeAndEncode("same"))
}

func TestCipherUseCase_Scenario(t *testing.T) {
	ctx := context.Background()
	uc := newCipherUseCase(nil)

	key := uc.NormalizeAndEncode(scenarioPassphrase)

	ciphertext, err := uc.Encrypt(ctx, scenarioPlaintext, key)
	require.NoError(t, err)
	assert.Equal(t, cryptoDomain.Ciphertext(scenarioCiphertext), ciphertext)

	plaintext, err := uc.Decrypt(ctx, ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, scenarioPlaintext, plaintext)
}

func TestCipherUseCase_Encrypt(t *testing.T) {
	ctx := context.Background()
	uc := newCipherUseCase(nil)
	key := uc.NormalizeAndEncode("encrypt-test")

	t.Run("Success_RoundTrip", func(t *testing.T) {
		inputs := []string{"", "a", "exactly16bytes!!", "multi\nline\ttext", "日本語のテキスト", scenarioPlaintext}
		for _, input := range inputs {
			ciphertext, err := uc.Encrypt(ctx, input, key)
			require.NoError(t, err)

			plaintext, err := uc.Decrypt(ctx, ciphertext, key)
			require.NoError(t, err)
			assert.Equal(t, input, plaintext)
		}
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		first, err := uc.Encrypt(ctx, "repeat", key)
		require.NoError(t, err)
		second, err := uc.Encrypt(ctx, "repeat", key)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Error_InvalidKey", func(t *testing.T) {
		invalidKeys := []cryptoDomain.EncodedKey{
			"",
			"not-base64!",
			cryptoDomain.Key("short").Encode(),
			cryptoDomain.Key(make([]byte, 32)).Encode(),
			" " + key,
		}
		for _, invalid := range invalidKeys {
			_, err := uc.Encrypt(ctx, "data", invalid)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey, "key %q", invalid)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}
	})

	t.Run("Error_BlockCipherFailure", func(t *testing.T) {
		mockCipher := &serviceMocks.MockBlockCipher{}
		mockCipher.On("Encrypt", []byte("data"), mock.Anything).Return(nil, cryptoDomain.ErrInvalidKey).Once()

		_, err := NewCipherUseCase(mockCipher, nil).Encrypt(ctx, "data", key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
		mockCipher.AssertExpectations(t)
	})
}

func TestCipherUseCase_Decrypt(t *testing.T) {
	ctx := context.Background()
	uc := newCipherUseCase(nil)
	key := uc.NormalizeAndEncode(scenarioPassphrase)

	t.Run("Error_WrongKeyBadPadding", func(t *testing.T) {
		// produced from the empty plaintext under the filler key
		_, err := uc.Decrypt(ctx, "NK8zbJ8DGzVWc4xj5h6i9g==", key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, scenarioCiphertext, uc.NormalizeAndEncode("SalvadorDali"))
		require.Error(t, err)
		assert.True(
			t,
			apperrors.Is(err, cryptoDomain.ErrInvalidCiphertext) || apperrors.Is(err, cryptoDomain.ErrDecode),
			"unexpected error: %v",
			err,
		)
	})

	t.Run("Error_InvalidKey", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, scenarioCiphertext, "AAAA")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
	})

	t.Run("Error_EmptyCiphertext", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, "", key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_MalformedBase64", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, "###", key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_MisalignedCiphertext", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, cryptoDomain.EncodeCiphertext([]byte("five!")), key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_InvalidUTF8", func(t *testing.T) {
		mockCipher := &serviceMocks.MockBlockCipher{}
		mockCipher.On("Decrypt", mock.Anything, mock.Anything).Return([]byte{0xff, 0xfe, 0xfd}, nil).Once()

		_, err := NewCipherUseCase(mockCipher, nil).Decrypt(ctx, cryptoDomain.EncodeCiphertext(make([]byte, 16)), key)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecode)
		mockCipher.AssertExpectations(t)
	})
}

func TestCipherUseCase_WithSecretKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RoundTripWithMockedStore", func(t *testing.T) {
		mockStore := &usecaseMocks.MockSecretKeyUseCase{}
		mockStore.On("Read", ctx).Return(cryptoDomain.NormalizeKey("managed").Encode(), nil).Twice()

		uc := newCipherUseCase(mockStore)

		ciphertext, err := uc.EncryptWithSecretKey(ctx, scenarioPlaintext)
		require.NoError(t, err)

		plaintext, err := uc.DecryptWithSecretKey(ctx, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, scenarioPlaintext, plaintext)
		mockStore.AssertExpectations(t)
	})

	t.Run("Success_MatchesExplicitKey", func(t *testing.T) {
		managed := cryptoDomain.NormalizeKey("managed").Encode()
		mockStore := &usecaseMocks.MockSecretKeyUseCase{}
		mockStore.On("Read", ctx).Return(managed, nil).Once()

		uc := newCipherUseCase(mockStore)

		implicit, err := uc.EncryptWithSecretKey(ctx, "hello")
		require.NoError(t, err)
		explicit, err := uc.Encrypt(ctx, "hello", managed)
		require.NoError(t, err)

		assert.Equal(t, explicit, implicit)
	})

	t.Run("Success_FileBackedStore", func(t *testing.T) {
		path := testutil.SecretKeyPath(t)
		store := NewSecretKeyUseCase(
			cryptoRepository.NewFileSecretKeyRepository(path),
			cryptoService.NewKeyGenerator(),
			discardLogger(),
		)
		uc := newCipherUseCase(store)

		ciphertext, err := uc.EncryptWithSecretKey(ctx, scenarioPlaintext)
		require.NoError(t, err)

		plaintext, err := uc.DecryptWithSecretKey(ctx, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, scenarioPlaintext, plaintext)
	})

	t.Run("Error_EmptySecretKey", func(t *testing.T) {
		mockStore := &usecaseMocks.MockSecretKeyUseCase{}
		mockStore.On("Read", ctx).Return(cryptoDomain.EncodedKey(""), nil).Twice()

		uc := newCipherUseCase(mockStore)

		_, err := uc.EncryptWithSecretKey(ctx, "data")
		assert.ErrorIs(t, err, cryptoDomain.ErrNoSecretKeyAvailable)
		assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)

		_, err = uc.DecryptWithSecretKey(ctx, scenarioCiphertext)
		assert.ErrorIs(t, err, cryptoDomain.ErrNoSecretKeyAvailable)
	})

	t.Run("Error_NoStoreConfigured", func(t *testing.T) {
		uc := newCipherUseCase(nil)

		_, err := uc.EncryptWithSecretKey(ctx, "data")
		assert.ErrorIs(t, err, cryptoDomain.ErrNoSecretKeyAvailable)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		mockStore := &usecaseMocks.MockSecretKeyUseCase{}
		mockStore.On("Read", ctx).Return(cryptoDomain.EncodedKey(""), cryptoDomain.ErrKeyUnavailable).Twice()

		uc := newCipherUseCase(mockStore)

		_, err := uc.EncryptWithSecretKey(ctx, "data")
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)

		_, err = uc.DecryptWithSecretKey(ctx, scenarioCiphertext)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)
	})

	t.Run("Error_CorruptSecretKey", func(t *testing.T) {
		mockStore := &usecaseMocks.MockSecretKeyUseCase{}
		mockStore.On("Read", ctx).Return(cryptoDomain.EncodedKey("garbage"), nil).Once()

		_, err := newCipherUseCase(mockStore).EncryptWithSecretKey(ctx, "data")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
	})
}
