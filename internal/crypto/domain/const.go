package domain

const (
	// KeySize is the length in bytes of every Key (AES-128).
	KeySize = 16

	// SeedSize is the number of random bytes read to seed secret key generation.
	SeedSize = 256

	// DefaultKeyFiller supplies the padding bytes for short passphrases.
	//
	// The filler is read positionally: a passphrase of length n is completed with
	// DefaultKeyFiller[n:KeySize]. Passphrases of equal length therefore always
	// receive the same suffix. This is a compatibility scheme, not a security control.
	DefaultKeyFiller = "0123456789ABCDEF"

	// DefaultSecretKeyPath is the secret key file location, relative to the
	// working directory.
	DefaultSecretKeyPath = "secret.key"
)
