// Package token holds the claim model and contract for signed access tokens.
package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered JWT claims plus the role and user id of the subject
type Claims struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	UserID uint64 `json:"user_id"`
}

// SignRequest describes a token to issue
type SignRequest struct {
	Subject  string `validate:"required"`
	Audience string `validate:"required"`
	Role     string
	UserID   uint64
}
