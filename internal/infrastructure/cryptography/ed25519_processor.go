package cryptography

import (
	"crypto/ed25519"
	"fmt"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
)

// ed25519Signer struct that implements the Signer interface
type ed25519Signer struct {
	privateKey ed25519.PrivateKey
	logger     logger.Logger
}

// NewEd25519Signer creates a signer from a private seed
func NewEd25519Signer(seed textcrypto.Ed25519Seed, logger logger.Logger) (textcrypto.Signer, error) {
	return &ed25519Signer{
		privateKey: ed25519.NewKeyFromSeed(seed[:]),
		logger:     logger,
	}, nil
}

// Sign creates a 64-byte Ed25519 signature of data.
func (e *ed25519Signer) Sign(data []byte) ([]byte, error) {
	signature := ed25519.Sign(e.privateKey, data)
	e.logger.Debug("Ed25519 signing succeeded")
	return signature, nil
}

// ed25519Verifier struct that implements the Verifier interface
type ed25519Verifier struct {
	publicKey ed25519.PublicKey
	logger    logger.Logger
}

// NewEd25519Verifier creates a verifier from a loaded public key
func NewEd25519Verifier(publicKey textcrypto.Ed25519PublicKey, logger logger.Logger) (textcrypto.Verifier, error) {
	return &ed25519Verifier{
		publicKey: ed25519.PublicKey(publicKey[:]),
		logger:    logger,
	}, nil
}

// Verify checks an Ed25519 signature.
// A signature that is not 64 bytes is an error; a wrong signature is false.
func (e *ed25519Verifier) Verify(data, signature []byte) (bool, error) {
	if len(signature) != textcrypto.Ed25519SignatureSize {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", textcrypto.ErrInvalidSignatureLength, textcrypto.Ed25519SignatureSize, len(signature))
	}

	valid := ed25519.Verify(e.publicKey, data, signature)
	e.logger.Debug("Ed25519 verification finished, valid: ", valid)
	return valid, nil
}

// PublicKeyFromSeed derives the public key belonging to seed.
func PublicKeyFromSeed(seed textcrypto.Ed25519Seed) textcrypto.Ed25519PublicKey {
	var publicKey textcrypto.Ed25519PublicKey
	copy(publicKey[:], ed25519.NewKeyFromSeed(seed[:]).Public().(ed25519.PublicKey))
	return publicKey
}
