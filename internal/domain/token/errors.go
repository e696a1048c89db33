package token

import "errors"

var (
	// ErrInvalidRequest is returned when a sign request is missing subject or audience
	ErrInvalidRequest = errors.New("invalid token request")

	// ErrInvalidToken is returned when a token fails parsing or validation
	ErrInvalidToken = errors.New("invalid token")
)
