// Package genpass generates random passwords from a cryptographically secure source.
package genpass

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/go-playground/validator/v10"
)

const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnopqrstuvwxyz"
	numberChars = "123456789"
	symbolChars = "!@#$%^&*_"
)

// ErrRandom is returned when the random source fails.
var ErrRandom = errors.New("random source failed")

// Options selects the password length and the enabled character classes.
type Options struct {
	Length    int `validate:"gte=1,lte=256"`
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

// DefaultOptions enables every character class with a length of 16.
func DefaultOptions() Options {
	return Options{Length: 16, Uppercase: true, Lowercase: true, Number: true, Symbol: true}
}

// Validate checks the length bounds and that the classes fit in the length.
func (o *Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("validation failed for password options: %w", err)
	}

	classes := len(o.classes())
	if classes == 0 {
		return fmt.Errorf("at least one character class must be enabled")
	}
	if o.Length < classes {
		return fmt.Errorf("length %d is shorter than the %d enabled character classes", o.Length, classes)
	}
	return nil
}

func (o *Options) classes() []string {
	var classes []string
	if o.Uppercase {
		classes = append(classes, upperChars)
	}
	if o.Lowercase {
		classes = append(classes, lowerChars)
	}
	if o.Number {
		classes = append(classes, numberChars)
	}
	if o.Symbol {
		classes = append(classes, symbolChars)
	}
	return classes
}

// Generate returns a password drawn from random. It contains at least one
// character of every enabled class. A nil random uses crypto/rand.Reader.
func Generate(random io.Reader, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if random == nil {
		random = rand.Reader
	}

	classes := opts.classes()
	var charset string
	password := make([]byte, 0, opts.Length)

	for _, class := range classes {
		c, err := pick(random, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		charset += class
	}

	for len(password) < opts.Length {
		c, err := pick(random, charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates so the guaranteed characters are not always first
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomIndex(random, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(random io.Reader, chars string) (byte, error) {
	i, err := randomIndex(random, len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

func randomIndex(random io.Reader, n int) (int, error) {
	i, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandom, err)
	}
	return int(i.Int64()), nil
}
