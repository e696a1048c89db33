package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textvault/internal/pkg/codec"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/source"
)

// textService implements the TextService interface
type textService struct {
	opener       source.Opener
	random       io.Reader
	keyGenerator textcrypto.KeyGenerator
	logger       logger.Logger
}

// NewTextService creates a new textService instance.
// random feeds key generation and nonces; nil selects crypto/rand.Reader.
func NewTextService(opener source.Opener, random io.Reader, logger logger.Logger) (textcrypto.TextService, error) {
	if opener == nil {
		return nil, fmt.Errorf("source opener must not be nil")
	}

	keyGenerator, err := cryptography.NewKeyGenerator(random, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	return &textService{
		opener:       opener,
		random:       random,
		keyGenerator: keyGenerator,
		logger:       logger,
	}, nil
}

// Sign loads the signing key, reads the input and returns the encoded signature
func (s *textService) Sign(ctx context.Context, input, keySource string, algorithm textcrypto.Algorithm) (string, error) {
	if err := requireOperation(algorithm, textcrypto.OperationSign); err != nil {
		return "", err
	}

	keyData, err := s.read(ctx, keySource)
	if err != nil {
		return "", err
	}

	var signer textcrypto.Signer
	switch algorithm {
	case textcrypto.AlgorithmBlake3:
		key, err := cryptography.LoadBlake3Key(keyData)
		if err != nil {
			return "", err
		}
		signer, err = cryptography.NewBlake3Processor(key, s.logger)
		if err != nil {
			return "", err
		}
	case textcrypto.AlgorithmEd25519:
		seed, err := cryptography.LoadEd25519Seed(keyData)
		if err != nil {
			return "", err
		}
		signer, err = cryptography.NewEd25519Signer(seed, s.logger)
		if err != nil {
			return "", err
		}
	case textcrypto.AlgorithmChaCha20:
		return "", unsupported(algorithm, textcrypto.OperationSign)
	}

	data, err := s.read(ctx, input)
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(data)
	if err != nil {
		return "", err
	}

	s.logger.Info("Signed input with ", algorithm)
	return codec.ToBase64URL(signature), nil
}

// Verify loads the verification key, reads the input and checks the encoded signature
func (s *textService) Verify(ctx context.Context, input, keySource string, algorithm textcrypto.Algorithm, signature string) (bool, error) {
	if err := requireOperation(algorithm, textcrypto.OperationVerify); err != nil {
		return false, err
	}

	keyData, err := s.read(ctx, keySource)
	if err != nil {
		return false, err
	}

	var verifier textcrypto.Verifier
	switch algorithm {
	case textcrypto.AlgorithmBlake3:
		key, err := cryptography.LoadBlake3Key(keyData)
		if err != nil {
			return false, err
		}
		verifier, err = cryptography.NewBlake3Processor(key, s.logger)
		if err != nil {
			return false, err
		}
	case textcrypto.AlgorithmEd25519:
		publicKey, err := cryptography.LoadEd25519PublicKey(keyData)
		if err != nil {
			return false, err
		}
		verifier, err = cryptography.NewEd25519Verifier(publicKey, s.logger)
		if err != nil {
			return false, err
		}
	case textcrypto.AlgorithmChaCha20:
		return false, unsupported(algorithm, textcrypto.OperationVerify)
	}

	data, err := s.read(ctx, input)
	if err != nil {
		return false, err
	}

	rawSignature, err := codec.FromBase64URL(strings.TrimSpace(signature))
	if err != nil {
		return false, fmt.Errorf("%w: signature: %w", textcrypto.ErrInvalidEncoding, err)
	}

	valid, err := verifier.Verify(data, rawSignature)
	if err != nil {
		return false, err
	}

	s.logger.Info("Verified input with ", algorithm, ", valid: ", valid)
	return valid, nil
}

// GenerateKeys returns fresh named key buffers for algorithm
func (s *textService) GenerateKeys(algorithm textcrypto.Algorithm) ([]textcrypto.KeyMaterial, error) {
	if err := requireOperation(algorithm, textcrypto.OperationGenerate); err != nil {
		return nil, err
	}
	return s.keyGenerator.Generate(algorithm)
}

// Encrypt loads the cipher key, reads the input and returns the encoded envelope
func (s *textService) Encrypt(ctx context.Context, input, keySource string) (string, error) {
	cipher, err := s.loadCipher(ctx, keySource)
	if err != nil {
		return "", err
	}

	plaintext, err := s.read(ctx, input)
	if err != nil {
		return "", err
	}

	envelope, err := cipher.Encrypt(plaintext)
	if err != nil {
		return "", err
	}

	s.logger.Info("Encrypted input with ", textcrypto.AlgorithmChaCha20)
	return codec.ToBase64URL(envelope), nil
}

// Decrypt loads the cipher key, decodes the envelope read from input and returns the plaintext
func (s *textService) Decrypt(ctx context.Context, input, keySource string) (string, error) {
	cipher, err := s.loadCipher(ctx, keySource)
	if err != nil {
		return "", err
	}

	text, err := s.read(ctx, input)
	if err != nil {
		return "", err
	}

	envelope, err := codec.FromBase64URL(strings.TrimSpace(string(text)))
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %w", textcrypto.ErrInvalidEncoding, err)
	}

	plaintext, err := cipher.Decrypt(envelope)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", textcrypto.ErrNonUTF8Plaintext
	}

	s.logger.Info("Decrypted input with ", textcrypto.AlgorithmChaCha20)
	return string(plaintext), nil
}

func (s *textService) loadCipher(ctx context.Context, keySource string) (textcrypto.Cipher, error) {
	keyData, err := s.read(ctx, keySource)
	if err != nil {
		return nil, err
	}

	key, err := cryptography.LoadChaCha20Key(keyData)
	if err != nil {
		return nil, err
	}

	return cryptography.NewChaCha20Processor(key, s.random, s.logger)
}

func (s *textService) read(ctx context.Context, name string) ([]byte, error) {
	data, err := source.ReadAll(ctx, s.opener, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrIO, err)
	}
	return data, nil
}

func requireOperation(algorithm textcrypto.Algorithm, op textcrypto.Operation) error {
	if !algorithm.Supports(op) {
		return unsupported(algorithm, op)
	}
	return nil
}

func unsupported(algorithm textcrypto.Algorithm, op textcrypto.Operation) error {
	return fmt.Errorf("%w: %s is not available for %q", textcrypto.ErrUnsupportedOperation, op, algorithm)
}
