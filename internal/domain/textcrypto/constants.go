package textcrypto

import (
	"fmt"
	"strings"
)

// Algorithm is the closed set of tags selecting a backend and its key shape.
type Algorithm string

const (
	// AlgorithmBlake3 selects the BLAKE3 keyed-hash backend
	AlgorithmBlake3 Algorithm = "blake3"

	// AlgorithmEd25519 selects the Ed25519 signature backend
	AlgorithmEd25519 Algorithm = "ed25519"

	// AlgorithmChaCha20 selects the ChaCha20-Poly1305 cipher backend
	AlgorithmChaCha20 Algorithm = "chacha20"
)

// Operation names a capability requested from the dispatch layer.
type Operation string

const (
	OperationSign     Operation = "sign"
	OperationVerify   Operation = "verify"
	OperationEncrypt  Operation = "encrypt"
	OperationDecrypt  Operation = "decrypt"
	OperationGenerate Operation = "generate"
)

// KeySize is the length of every secret key, seed and public key in bytes.
const KeySize = 32

// Blake3SignatureSize is the length of a BLAKE3 keyed-hash digest.
const Blake3SignatureSize = 32

// Ed25519SignatureSize is the length of an Ed25519 signature.
const Ed25519SignatureSize = 64

// NonceSize is the length of the random nonce prefixed to every envelope.
const NonceSize = 12

// Key file names written by the generate command
const (
	Blake3KeyFile         = "blake3.txt"
	Ed25519PrivateKeyFile = "ed25519.sk"
	Ed25519PublicKeyFile  = "ed25519.pk"
	ChaCha20KeyFile       = "chacha20.key"
)

// Algorithms lists every supported tag in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBlake3, AlgorithmEd25519, AlgorithmChaCha20}
}

// ParseAlgorithm maps a user supplied name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmBlake3:
		return AlgorithmBlake3, nil
	case AlgorithmEd25519:
		return AlgorithmEd25519, nil
	case AlgorithmChaCha20:
		return AlgorithmChaCha20, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// Supports reports whether the algorithm implements the given operation.
func (a Algorithm) Supports(op Operation) bool {
	switch a {
	case AlgorithmBlake3, AlgorithmEd25519:
		return op == OperationSign || op == OperationVerify || op == OperationGenerate
	case AlgorithmChaCha20:
		return op == OperationEncrypt || op == OperationDecrypt || op == OperationGenerate
	default:
		return false
	}
}
