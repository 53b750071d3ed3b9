// Package repository implements persistence for the managed secret key.
//
// The secret key lives in a single file whose entire content is one EncodedKey,
// with no trailing newline or metadata. The file is created at most once and is
// never overwritten or removed by this package.
//
// # Usage Example
//
//	repo := repository.NewFileSecretKeyRepository("secret.key")
//
//	created, err := repo.CreateIfNotExists(ctx, key.Encode())
//	if err != nil {
//	    return err
//	}
//
//	encoded, err := repo.Get(ctx)
package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
)

// secretKeyFileMode restricts the key file to its owner.
const secretKeyFileMode = 0o600

// FileSecretKeyRepository stores the secret key in a file on the local filesystem.
//
// Creation uses O_CREATE|O_EXCL, so when several processes race to create the
// file only one of them writes it and the others observe it as existing. A
// process that lost the race may still have generated a key that is then
// discarded; the file content is always the winner's key.
//
// The repository keeps no in-memory state and is safe for concurrent use.
type FileSecretKeyRepository struct {
	path string
}

// NewFileSecretKeyRepository creates a repository for the key file at path.
func NewFileSecretKeyRepository(path string) *FileSecretKeyRepository {
	return &FileSecretKeyRepository{path: path}
}

// CreateIfNotExists writes key as the entire content of the key file when the
// file does not exist yet.
//
// Returns:
//   - true if this call created the file
//   - false with a nil error if the file already existed (it is left untouched)
//   - ErrKeyUnavailable wrapping the cause if the file could not be created or written
func (r *FileSecretKeyRepository) CreateIfNotExists(ctx context.Context, key cryptoDomain.EncodedKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, secretKeyFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: create %q: %v", cryptoDomain.ErrKeyUnavailable, r.path, err)
	}

	if _, err := f.WriteString(string(key)); err != nil {
		_ = f.Close()
		// Leaving a partial file behind would make every later read fail.
		_ = os.Remove(r.path)
		return false, fmt.Errorf("%w: write %q: %v", cryptoDomain.ErrKeyUnavailable, r.path, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("%w: close %q: %v", cryptoDomain.ErrKeyUnavailable, r.path, err)
	}

	return true, nil
}

// Get returns the key file content verbatim.
//
// An empty file yields an empty EncodedKey and a nil error; callers decide
// whether that is acceptable. A missing or unreadable file yields ErrKeyUnavailable.
func (r *FileSecretKeyRepository) Get(ctx context.Context) (cryptoDomain.EncodedKey, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: read %q: %v", cryptoDomain.ErrKeyUnavailable, r.path, err)
	}

	return cryptoDomain.EncodedKey(data), nil
}
