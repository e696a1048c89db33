package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/codec"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/source"
)

// Base64Service encodes and decodes byte sources with a selectable alphabet
type Base64Service struct {
	opener source.Opener
	logger logger.Logger
}

// NewBase64Service creates a new Base64Service instance
func NewBase64Service(opener source.Opener, logger logger.Logger) (*Base64Service, error) {
	if opener == nil {
		return nil, fmt.Errorf("source opener must not be nil")
	}
	return &Base64Service{
		opener: opener,
		logger: logger,
	}, nil
}

// Encode reads input and returns its encoding in format
func (s *Base64Service) Encode(ctx context.Context, input string, format codec.Format) (string, error) {
	data, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", textcrypto.ErrIO, err)
	}

	s.logger.Debug("Encoding input as ", format, " base64")
	return format.Encode(data), nil
}

// Decode reads encoded text from input and returns the decoded UTF-8 text
func (s *Base64Service) Decode(ctx context.Context, input string, format codec.Format) (string, error) {
	data, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", textcrypto.ErrIO, err)
	}

	decoded, err := format.Decode(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", textcrypto.ErrInvalidEncoding, err)
	}
	if !utf8.Valid(decoded) {
		return "", textcrypto.ErrNonUTF8Plaintext
	}

	s.logger.Debug("Decoded ", format, " base64 input")
	return string(decoded), nil
}
