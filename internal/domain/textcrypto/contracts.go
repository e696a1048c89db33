package textcrypto

import "context"

// Signer produces a signature over the full input.
type Signer interface {
	// Sign returns the raw signature bytes for data.
	Sign(data []byte) ([]byte, error)
}

// Verifier checks a signature over the full input.
// A mismatch is reported as false with a nil error.
type Verifier interface {
	Verify(data, signature []byte) (bool, error)
}

// SignVerifier is implemented by backends holding a shared secret,
// such as the keyed-hash backend.
type SignVerifier interface {
	Signer
	Verifier
}

// Cipher performs authenticated encryption with a fresh nonce per call.
// Envelopes are nonce || ciphertext || tag.
type Cipher interface {
	// Encrypt seals plaintext and returns the envelope.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens an envelope produced by Encrypt.
	// Returns ErrMalformedEnvelope for short input and ErrAuthenticationFailed on tag mismatch.
	Decrypt(envelope []byte) ([]byte, error)
}

// KeyGenerator produces fresh raw key buffers for an algorithm.
type KeyGenerator interface {
	// Generate returns the buffers in a fixed order: one buffer for blake3 and chacha20,
	// private then public for ed25519.
	Generate(algorithm Algorithm) ([]KeyMaterial, error)
}

// TextService maps an algorithm tag onto its backend and encodes results at the text boundary.
// Input and key sources are "-" for standard input or a path to an existing file.
type TextService interface {
	// Sign returns the URL-safe unpadded base64 signature of the input.
	Sign(ctx context.Context, input, keySource string, algorithm Algorithm) (string, error)

	// Verify checks a URL-safe unpadded base64 signature. A mismatch is false with a nil error.
	Verify(ctx context.Context, input, keySource string, algorithm Algorithm, signature string) (bool, error)

	// GenerateKeys returns fresh named key buffers for algorithm.
	GenerateKeys(algorithm Algorithm) ([]KeyMaterial, error)

	// Encrypt returns the URL-safe unpadded base64 envelope of the input.
	Encrypt(ctx context.Context, input, keySource string) (string, error)

	// Decrypt opens a URL-safe unpadded base64 envelope and returns the UTF-8 plaintext.
	Decrypt(ctx context.Context, input, keySource string) (string, error)
}
