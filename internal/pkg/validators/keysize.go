package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key buffer length based on the algorithm type (blake3, ed25519 or chacha20).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Len()

	switch algorithm {
	case "blake3", "ed25519", "chacha20":
		return keySize == 32
	default:
		return false
	}
}
