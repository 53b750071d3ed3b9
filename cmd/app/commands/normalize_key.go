package commands

import (
	"context"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
)

// RunNormalizeKey derives a 16-byte AES key from passphrase and prints its base64 form.
// Passphrases of 16 bytes or more are truncated, shorter ones are padded from the
// "0123456789ABCDEF" filler starting at the passphrase length.
//
// The passphrase is never logged.
func RunNormalizeKey(
	ctx context.Context,
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
	writer io.Writer,
	passphrase string,
	format string,
) error {
	logger.Debug("normalizing passphrase", slog.Int("passphrase_bytes", len(passphrase)))

	key := cipherUseCase.NormalizeAndEncode(passphrase)

	return writeResult(writer, format, string(key), map[string]any{
		"key": key,
	})
}
