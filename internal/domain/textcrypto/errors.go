package textcrypto

import "errors"

var (
	// ErrKeyFormat is returned when key bytes are too short or otherwise malformed.
	ErrKeyFormat = errors.New("key format error")

	// ErrInvalidPublicKey is returned when Ed25519 public key bytes are not a valid curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignatureLength is returned when an Ed25519 signature is not 64 bytes.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrEntropySource is returned when the secure random source cannot be read.
	ErrEntropySource = errors.New("entropy source error")

	// ErrMalformedEnvelope is returned when a decoded ciphertext envelope is shorter than a nonce.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	// It never carries partial plaintext.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNonUTF8Plaintext is returned when a text result is required but the bytes are not UTF-8.
	ErrNonUTF8Plaintext = errors.New("plaintext is not valid utf-8")

	// ErrUnsupportedOperation is returned for tag/operation combinations that are not implemented.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIO is returned when reading an input or key source fails.
	ErrIO = errors.New("io error")

	// ErrInvalidEncoding is returned when boundary text is not valid URL-safe unpadded base64.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
