package cryptography

import (
	"crypto/subtle"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"

	"lukechampine.com/blake3"
)

// blake3Processor struct that implements the SignVerifier interface with a BLAKE3 keyed hash
type blake3Processor struct {
	key    textcrypto.Blake3Key
	logger logger.Logger
}

// NewBlake3Processor creates and returns a new instance of blake3Processor
func NewBlake3Processor(key textcrypto.Blake3Key, logger logger.Logger) (textcrypto.SignVerifier, error) {
	return &blake3Processor{
		key:    key,
		logger: logger,
	}, nil
}

func (b *blake3Processor) digest(data []byte) []byte {
	h := blake3.New(textcrypto.Blake3SignatureSize, b.key[:])
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// Sign returns the 32-byte keyed hash of data.
func (b *blake3Processor) Sign(data []byte) ([]byte, error) {
	signature := b.digest(data)
	b.logger.Debug("BLAKE3 signing succeeded")
	return signature, nil
}

// Verify recomputes the keyed hash and compares it in constant time.
func (b *blake3Processor) Verify(data, signature []byte) (bool, error) {
	valid := subtle.ConstantTimeCompare(b.digest(data), signature) == 1
	b.logger.Debug("BLAKE3 verification finished, valid: ", valid)
	return valid, nil
}
