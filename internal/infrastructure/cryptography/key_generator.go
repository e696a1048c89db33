package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/genpass"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
)

// keyGenerator struct that implements the KeyGenerator interface
type keyGenerator struct {
	random io.Reader
	logger logger.Logger
}

// NewKeyGenerator creates a generator drawing from random,
// or from crypto/rand.Reader when random is nil.
func NewKeyGenerator(random io.Reader, logger logger.Logger) (textcrypto.KeyGenerator, error) {
	if random == nil {
		random = rand.Reader
	}
	return &keyGenerator{
		random: random,
		logger: logger,
	}, nil
}

// Generate produces fresh raw key buffers for algorithm.
func (g *keyGenerator) Generate(algorithm textcrypto.Algorithm) ([]textcrypto.KeyMaterial, error) {
	var keys []textcrypto.KeyMaterial

	switch algorithm {
	case textcrypto.AlgorithmBlake3:
		opts := genpass.Options{Length: textcrypto.KeySize, Uppercase: true, Lowercase: true, Number: true, Symbol: true}
		password, err := genpass.Generate(g.random, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", textcrypto.ErrEntropySource, err)
		}
		keys = []textcrypto.KeyMaterial{
			{Name: textcrypto.Blake3KeyFile, Algorithm: algorithm, Data: []byte(password)},
		}

	case textcrypto.AlgorithmEd25519:
		buf, err := g.randomBytes(textcrypto.KeySize)
		if err != nil {
			return nil, err
		}
		seed := textcrypto.Ed25519Seed(buf)
		publicKey := PublicKeyFromSeed(seed)
		keys = []textcrypto.KeyMaterial{
			{Name: textcrypto.Ed25519PrivateKeyFile, Algorithm: algorithm, Data: seed[:]},
			{Name: textcrypto.Ed25519PublicKeyFile, Algorithm: algorithm, Data: publicKey[:]},
		}

	case textcrypto.AlgorithmChaCha20:
		key, err := g.randomBytes(textcrypto.KeySize)
		if err != nil {
			return nil, err
		}
		keys = []textcrypto.KeyMaterial{
			{Name: textcrypto.ChaCha20KeyFile, Algorithm: algorithm, Data: key},
		}

	default:
		return nil, fmt.Errorf("%w: generate for %q", textcrypto.ErrUnsupportedOperation, algorithm)
	}

	for i := range keys {
		if err := keys[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", textcrypto.ErrKeyFormat, err)
		}
	}

	g.logger.Info("Generated ", algorithm, " key material")
	return keys, nil
}

func (g *keyGenerator) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(g.random, b); err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrEntropySource, err)
	}
	return b, nil
}
