package app

import (
	"fmt"

	cryptoRepository "github.com/allisson/secretkey/internal/crypto/repository"
	cryptoService "github.com/allisson/secretkey/internal/crypto/service"
	cryptoUseCase "github.com/allisson/secretkey/internal/crypto/usecase"
)

// KeyGenerator returns the secret key generator service.
func (c *Container) KeyGenerator() cryptoService.KeyGenerator {
	c.keyGeneratorInit.Do(func() {
		c.keyGenerator = cryptoService.NewKeyGenerator()
	})
	return c.keyGenerator
}

// BlockCipher returns the block cipher service.
func (c *Container) BlockCipher() cryptoService.BlockCipher {
	c.blockCipherInit.Do(func() {
		c.blockCipher = cryptoService.NewAESECB()
	})
	return c.blockCipher
}

// SecretKeyRepository returns the file-backed secret key repository.
func (c *Container) SecretKeyRepository() (cryptoUseCase.SecretKeyRepository, error) {
	var err error
	c.secretKeyRepositoryInit.Do(func() {
		c.secretKeyRepository, err = c.initSecretKeyRepository()
		if err != nil {
			c.setInitError("secretKeyRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.getInitError("secretKeyRepository"); exists {
		return nil, storedErr
	}
	return c.secretKeyRepository, nil
}

// SecretKeyUseCase returns the managed secret key use case.
func (c *Container) SecretKeyUseCase() (cryptoUseCase.SecretKeyUseCase, error) {
	var err error
	c.secretKeyUseCaseInit.Do(func() {
		c.secretKeyUseCase, err = c.initSecretKeyUseCase()
		if err != nil {
			c.setInitError("secretKeyUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.getInitError("secretKeyUseCase"); exists {
		return nil, storedErr
	}
	return c.secretKeyUseCase, nil
}

// CipherUseCase returns the cipher use case.
func (c *Container) CipherUseCase() (cryptoUseCase.CipherUseCase, error) {
	var err error
	c.cipherUseCaseInit.Do(func() {
		c.cipherUseCase, err = c.initCipherUseCase()
		if err != nil {
			c.setInitError("cipherUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.getInitError("cipherUseCase"); exists {
		return nil, storedErr
	}
	return c.cipherUseCase, nil
}

// initSecretKeyRepository creates the secret key repository at the configured path.
func (c *Container) initSecretKeyRepository() (cryptoUseCase.SecretKeyRepository, error) {
	if c.config.SecretKeyPath == "" {
		return nil, fmt.Errorf("secret key path is not configured")
	}
	return cryptoRepository.NewFileSecretKeyRepository(c.config.SecretKeyPath), nil
}

// initSecretKeyUseCase creates the secret key use case with all its dependencies.
func (c *Container) initSecretKeyUseCase() (cryptoUseCase.SecretKeyUseCase, error) {
	repo, err := c.SecretKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key repository for secret key use case: %w", err)
	}

	return cryptoUseCase.NewSecretKeyUseCase(repo, c.KeyGenerator(), c.Logger()), nil
}

// initCipherUseCase creates the cipher use case with all its dependencies.
func (c *Container) initCipherUseCase() (cryptoUseCase.CipherUseCase, error) {
	secretKeyUseCase, err := c.SecretKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key use case for cipher use case: %w", err)
	}

	baseUseCase := cryptoUseCase.NewCipherUseCase(c.BlockCipher(), secretKeyUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		cryptoMetrics, err := c.CryptoMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get crypto metrics for cipher use case: %w", err)
		}
		return cryptoUseCase.NewCipherUseCaseWithMetrics(baseUseCase, cryptoMetrics), nil
	}

	return baseUseCase, nil
}
