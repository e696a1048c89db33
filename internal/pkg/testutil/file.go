package testutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrEntropyUnavailable is returned by FailingReader.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// FailingReader is a random source that always fails
type FailingReader struct{}

func (FailingReader) Read([]byte) (int, error) {
	return 0, ErrEntropyUnavailable
}
