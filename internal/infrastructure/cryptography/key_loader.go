package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"

	"filippo.io/edwards25519"
)

// Key loaders take the first textcrypto.KeySize bytes of the source and ignore the rest,
// so a combined secret+public dump is accepted. Shorter input fails with ErrKeyFormat.

func keyPrefix(data []byte, what string) ([textcrypto.KeySize]byte, error) {
	var key [textcrypto.KeySize]byte
	if len(data) < textcrypto.KeySize {
		return key, fmt.Errorf("%w: %s requires %d bytes, got %d", textcrypto.ErrKeyFormat, what, textcrypto.KeySize, len(data))
	}
	copy(key[:], data[:textcrypto.KeySize])
	return key, nil
}

// LoadBlake3Key loads the keyed-hash secret.
func LoadBlake3Key(data []byte) (textcrypto.Blake3Key, error) {
	key, err := keyPrefix(data, "blake3 key")
	return textcrypto.Blake3Key(key), err
}

// LoadEd25519Seed loads an Ed25519 private seed.
func LoadEd25519Seed(data []byte) (textcrypto.Ed25519Seed, error) {
	seed, err := keyPrefix(data, "ed25519 private key")
	return textcrypto.Ed25519Seed(seed), err
}

// LoadEd25519PublicKey loads an Ed25519 public key for verify-only use.
// The bytes must decode to a point on the curve.
func LoadEd25519PublicKey(data []byte) (textcrypto.Ed25519PublicKey, error) {
	key, err := keyPrefix(data, "ed25519 public key")
	if err != nil {
		return textcrypto.Ed25519PublicKey{}, err
	}
	if _, err := new(edwards25519.Point).SetBytes(key[:]); err != nil {
		return textcrypto.Ed25519PublicKey{}, fmt.Errorf("%w: %w", textcrypto.ErrInvalidPublicKey, err)
	}
	return textcrypto.Ed25519PublicKey(key), nil
}

// LoadChaCha20Key loads the cipher secret.
func LoadChaCha20Key(data []byte) (textcrypto.ChaCha20Key, error) {
	key, err := keyPrefix(data, "chacha20 key")
	return textcrypto.ChaCha20Key(key), err
}
