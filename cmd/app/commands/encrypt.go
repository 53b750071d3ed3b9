package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
)

// RunEncrypt encrypts plaintext and prints the base64 ciphertext.
// When key is empty the managed secret key is used, creating it on first use.
func RunEncrypt(
	ctx context.Context,
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
	writer io.Writer,
	plaintext string,
	key string,
	format string,
) error {
	managed := key == ""
	logger.Debug("encrypting plaintext", slog.Bool("managed_key", managed))

	var (
		ciphertext cryptoDomain.Ciphertext
		err        error
	)
	if managed {
		ciphertext, err = cipherUseCase.EncryptWithSecretKey(ctx, plaintext)
	} else {
		ciphertext, err = cipherUseCase.Encrypt(ctx, plaintext, cryptoDomain.EncodedKey(key))
	}
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	return writeResult(writer, format, string(ciphertext), map[string]any{
		"ciphertext":  ciphertext,
		"managed_key": managed,
	})
}
