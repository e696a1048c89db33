package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textvault/internal/domain/token"
	"github.com/MGTheTrain/textvault/internal/pkg/config"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtProcessor struct that implements the token Processor interface with HS256
type jwtProcessor struct {
	issuer string
	secret []byte
	now    func() time.Time
	logger logger.Logger
}

// NewJWTProcessor creates and returns a new instance of jwtProcessor
func NewJWTProcessor(settings *config.JWTSettings, logger logger.Logger) (token.Processor, error) {
	if settings == nil {
		return nil, fmt.Errorf("jwt settings must not be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &jwtProcessor{
		issuer: settings.Issuer,
		secret: []byte(settings.Secret),
		now:    time.Now,
		logger: logger,
	}, nil
}

// Sign issues an HS256 token with a random jti and iat/nbf set to now
func (p *jwtProcessor) Sign(req token.SignRequest, ttl time.Duration) (string, error) {
	if err := validator.New().Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", token.ErrInvalidRequest, err)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("%w: expiry must be positive", token.ErrInvalidRequest)
	}

	now := p.now()
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   req.Subject,
			Audience:  jwt.ClaimStrings{req.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Role:   req.Role,
		UserID: req.UserID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	p.logger.Info("Issued token ", claims.ID, " for subject ", req.Subject)
	return signed, nil
}

// Verify checks the HS256 signature, exp and nbf of tokenString. The audience is not checked.
func (p *jwtProcessor) Verify(tokenString string) (*token.Claims, error) {
	claims := &token.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn("Rejected expired token")
		}
		return nil, fmt.Errorf("%w: %w", token.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, token.ErrInvalidToken
	}

	p.logger.Info("Verified token for subject ", claims.Subject)
	return claims, nil
}
