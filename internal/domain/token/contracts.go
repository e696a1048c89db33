package token

import "time"

// Processor issues and verifies HMAC-signed tokens
type Processor interface {
	// Sign issues a token for req that expires after ttl.
	Sign(req SignRequest, ttl time.Duration) (string, error)

	// Verify checks the signature and time-based claims of tokenString and returns its claims.
	Verify(tokenString string) (*Claims, error)
}
