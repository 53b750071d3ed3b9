package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
)

// RunDecrypt decrypts a base64 ciphertext and prints the recovered plaintext.
// When key is empty the managed secret key is used, creating it on first use.
//
// A wrong key usually fails the padding check and is reported as an invalid
// ciphertext. It can also unpad cleanly and yield bytes that are not UTF-8.
func RunDecrypt(
	ctx context.Context,
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
	writer io.Writer,
	ciphertext string,
	key string,
	format string,
) error {
	managed := key == ""
	logger.Debug("decrypting ciphertext", slog.Bool("managed_key", managed))

	var (
		plaintext string
		err       error
	)
	if managed {
		plaintext, err = cipherUseCase.DecryptWithSecretKey(ctx, cryptoDomain.Ciphertext(ciphertext))
	} else {
		plaintext, err = cipherUseCase.Decrypt(
			ctx,
			cryptoDomain.Ciphertext(ciphertext),
			cryptoDomain.EncodedKey(key),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	return writeResult(writer, format, plaintext, map[string]any{
		"plaintext":   plaintext,
		"managed_key": managed,
	})
}
