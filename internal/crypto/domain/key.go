package domain

import (
	"encoding/base64"
	"fmt"
)

// Key is raw symmetric key material. Valid keys are exactly KeySize bytes.
type Key []byte

// EncodedKey is the standard base64 form of a Key, used for storage and at the
// public boundary of encrypt/decrypt operations.
type EncodedKey string

// Ciphertext is the standard base64 form of the raw cipher output.
type Ciphertext string

// NormalizeKey turns an arbitrary passphrase into a KeySize-byte Key.
//
// Passphrases longer than KeySize are truncated. Shorter ones are padded on the
// right with DefaultKeyFiller, reading the filler from the index equal to the
// passphrase length. The function never fails.
//
// Lengths are measured in bytes. A multi-byte UTF-8 passphrase may be cut inside
// a rune; the resulting key is still KeySize bytes but does not round-trip as text.
func NormalizeKey(passphrase string) Key {
	if len(passphrase) >= KeySize {
		return Key(passphrase[:KeySize])
	}

	key := make(Key, 0, KeySize)
	key = append(key, passphrase...)
	key = append(key, DefaultKeyFiller[len(passphrase):KeySize]...)
	return key
}

// Encode returns the base64 representation of the key.
func (k Key) Encode() EncodedKey {
	return EncodedKey(base64.StdEncoding.EncodeToString(k))
}

// Valid reports whether the key has the required length.
func (k Key) Valid() bool {
	return len(k) == KeySize
}

// Decode returns the raw key bytes.
// Returns ErrInvalidKey if the value is not base64 or does not decode to KeySize bytes.
func (e EncodedKey) Decode() (Key, error) {
	raw, err := base64.StdEncoding.DecodeString(string(e))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	key := Key(raw)
	if !key.Valid() {
		Zero(raw)
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}

	return key, nil
}

// String implements fmt.Stringer.
func (e EncodedKey) String() string {
	return string(e)
}

// Decode returns the raw ciphertext bytes.
// Returns ErrInvalidCiphertext if the value is not valid base64.
func (c Ciphertext) Decode() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(string(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	return raw, nil
}

// String implements fmt.Stringer.
func (c Ciphertext) String() string {
	return string(c)
}

// EncodeCiphertext wraps raw cipher output in its base64 form.
func EncodeCiphertext(raw []byte) Ciphertext {
	return Ciphertext(base64.StdEncoding.EncodeToString(raw))
}
