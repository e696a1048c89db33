package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JWT environment variable names, relative to EnvPrefix
const (
	EnvJWTIssuer = "JWT_ISSUER"
	EnvJWTSecret = "JWT_SECRET"
)

// JWTSettings holds the issuer and HMAC secret used to sign and verify tokens
type JWTSettings struct {
	Issuer string `mapstructure:"issuer" validate:"required"`
	Secret string `mapstructure:"secret" validate:"required,min=16"`
}

// Validate checks that all fields in JWTSettings are valid
func (s *JWTSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for JWTSettings: %w", err)
	}
	return nil
}

// ReadJWTSettingsFromEnv builds JWTSettings from the environment.
func ReadJWTSettingsFromEnv() (*JWTSettings, error) {
	settings := &JWTSettings{
		Issuer: getEnv(EnvJWTIssuer, ""),
		Secret: getEnv(EnvJWTSecret, ""),
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("missing or invalid %s%s/%s%s: %w", EnvPrefix, EnvJWTIssuer, EnvPrefix, EnvJWTSecret, err)
	}
	return settings, nil
}
