// Package testutil provides testing utilities for secret key file tests.
//
// Every helper works inside t.TempDir(), so files are removed when the test ends.
//
//	path := testutil.SecretKeyPath(t)                       // not created yet
//	path := testutil.WriteSecretKeyFile(t, "MDEy...RFRg==") // created with 0600
//	content := testutil.ReadSecretKeyFile(t, path)
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// secretKeyFileName mirrors the default store location.
const secretKeyFileName = "secret.key"

// SecretKeyPath returns a key file path inside a fresh temporary directory.
// The file itself does not exist.
func SecretKeyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), secretKeyFileName)
}

// WriteSecretKeyFile creates a key file holding content and returns its path.
func WriteSecretKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := SecretKeyPath(t)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ReadSecretKeyFile returns the content of the key file at path.
func ReadSecretKeyFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
