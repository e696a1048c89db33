// Package codec holds the text encodings used at the command boundary.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Format selects a base64 alphabet for the base64 command.
type Format string

const (
	// FormatStandard is the padded standard alphabet
	FormatStandard Format = "standard"

	// FormatURLSafe is the unpadded URL-safe alphabet
	FormatURLSafe Format = "urlsafe"
)

// ParseFormat maps a user supplied name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatStandard:
		return FormatStandard, nil
	case FormatURLSafe:
		return FormatURLSafe, nil
	default:
		return "", fmt.Errorf("invalid base64 format: %q", name)
	}
}

func (f Format) encoding() *base64.Encoding {
	if f == FormatURLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode encodes data with the alphabet selected by f.
func (f Format) Encode(data []byte) string {
	return f.encoding().EncodeToString(data)
}

// Decode decodes s with the alphabet selected by f. Surrounding whitespace is ignored.
func (f Format) Decode(s string) ([]byte, error) {
	return f.encoding().DecodeString(strings.TrimSpace(s))
}

// ToBase64URL encodes bytes to URL-safe base64 without padding.
// Every signature and envelope leaves the system in this form.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
// Padding or characters outside the URL alphabet are rejected.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.Strict().DecodeString(s)
}
