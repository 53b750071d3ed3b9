package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
)

// RunSecretKey prints the managed secret key, generating and persisting it if
// the key file does not exist yet.
//
// Security: the output is the raw key material. Do not pipe it into logs.
func RunSecretKey(
	ctx context.Context,
	secretKeyUseCase cryptoUseCase.SecretKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	format string,
) error {
	key, err := secretKeyUseCase.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read secret key: %w", err)
	}
	if key == "" {
		return fmt.Errorf("%w: %s is empty", cryptoDomain.ErrNoSecretKeyAvailable, path)
	}

	logger.Debug("secret key loaded", slog.String("path", path))

	return writeResult(writer, format, string(key), map[string]any{
		"key":  key,
		"path": path,
	})
}
