package cryptography

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

// chacha20Processor struct that implements the Cipher interface with ChaCha20-Poly1305
type chacha20Processor struct {
	aead   cipher.AEAD
	random io.Reader
	logger logger.Logger
}

// NewChaCha20Processor creates a cipher for key. Nonces are drawn from random,
// or from crypto/rand.Reader when random is nil.
func NewChaCha20Processor(key textcrypto.ChaCha20Key, random io.Reader, logger logger.Logger) (textcrypto.Cipher, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrKeyFormat, err)
	}
	if random == nil {
		random = rand.Reader
	}

	return &chacha20Processor{
		aead:   aead,
		random: random,
		logger: logger,
	}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns nonce || ciphertext || tag.
func (c *chacha20Processor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, textcrypto.NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: failed to generate nonce: %w", textcrypto.ErrEntropySource, err)
	}

	envelope := make([]byte, 0, len(nonce)+len(plaintext)+c.aead.Overhead())
	envelope = append(envelope, nonce...)
	envelope = c.aead.Seal(envelope, nonce, plaintext, nil)
	c.logger.Debug("ChaCha20-Poly1305 encryption succeeded")
	return envelope, nil
}

// Decrypt splits the nonce off the envelope and opens the remainder.
func (c *chacha20Processor) Decrypt(envelope []byte) ([]byte, error) {
	if len(envelope) < textcrypto.NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", textcrypto.ErrMalformedEnvelope, len(envelope), textcrypto.NonceSize)
	}

	nonce, sealed := envelope[:textcrypto.NonceSize], envelope[textcrypto.NonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, textcrypto.ErrAuthenticationFailed
	}

	c.logger.Debug("ChaCha20-Poly1305 decryption succeeded")
	return plaintext, nil
}
