package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoService "github.com/allisson/secretkey/internal/crypto/service"
)

// secretKeyUseCase implements SecretKeyUseCase.
//
// The first successful Read generates a key and persists it if the repository
// holds none. The check-generate-persist sequence runs under mu, so concurrent
// first callers in one process execute it exactly once and all read back the same
// key. A failed initialization is not remembered and the next Read tries again.
type secretKeyUseCase struct {
	repo         SecretKeyRepository
	keyGenerator cryptoService.KeyGenerator
	logger       *slog.Logger

	mu          sync.Mutex
	initialized bool
}

// NewSecretKeyUseCase creates a new SecretKeyUseCase.
func NewSecretKeyUseCase(
	repo SecretKeyRepository,
	keyGenerator cryptoService.KeyGenerator,
	logger *slog.Logger,
) SecretKeyUseCase {
	return &secretKeyUseCase{
		repo:         repo,
		keyGenerator: keyGenerator,
		logger:       logger,
	}
}

// Read returns the persisted key, initializing the store on first use.
//
// The stored content is read on every call. An empty stored key is returned as
// is; ErrKeyUnavailable is returned when the key cannot be created or read.
func (s *secretKeyUseCase) Read(ctx context.Context) (cryptoDomain.EncodedKey, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return "", err
	}

	return s.repo.Get(ctx)
}

func (s *secretKeyUseCase) ensureInitialized(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	key, err := s.keyGenerator.Generate()
	if err != nil {
		return fmt.Errorf("%w: %v", cryptoDomain.ErrKeyUnavailable, err)
	}
	defer cryptoDomain.Zero(key)

	created, err := s.repo.CreateIfNotExists(ctx, key.Encode())
	if err != nil {
		return err
	}

	if created {
		s.logger.Info("secret key created")
	} else {
		s.logger.Debug("reusing existing secret key")
	}

	s.initialized = true
	return nil
}
