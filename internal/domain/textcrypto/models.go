package textcrypto

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/textvault/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Blake3Key is the 32-byte secret of the keyed-hash backend.
type Blake3Key [KeySize]byte

// Ed25519Seed is the 32-byte private seed of an Ed25519 key pair.
type Ed25519Seed [KeySize]byte

// Ed25519PublicKey is a 32-byte encoded Ed25519 point, validated on load.
type Ed25519PublicKey [KeySize]byte

// ChaCha20Key is the 32-byte secret of the cipher backend.
type ChaCha20Key [KeySize]byte

// KeyMaterial is one raw key buffer produced by the key generator,
// named for the file it is persisted to.
type KeyMaterial struct {
	Name      string    `validate:"required"`
	Algorithm Algorithm `validate:"required,oneof=blake3 ed25519 chacha20"`
	Data      []byte    `validate:"required,keysize"`
}

// Validate for validating KeyMaterial struct
func (k *KeyMaterial) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
