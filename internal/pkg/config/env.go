package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable read by the CLI.
const EnvPrefix = "TEXTVAULT_"

// DefaultEnvFile is the optional dotenv file loaded before reading settings.
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from a dotenv file without overriding values already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(name, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + name); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(name string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s%s: %w", EnvPrefix, name, err)
	}
	return value, nil
}
