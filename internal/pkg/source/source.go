// Package source opens the byte sources named on the command line:
// "-" for standard input, otherwise a path to an existing file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the identifier selecting the process's standard input.
const Stdin = "-"

// ErrNotExist is returned when a named source file does not exist.
var ErrNotExist = errors.New("source does not exist")

// Opener opens a named byte source.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// FileOpener opens files from disk and maps "-" to Stdin.
type FileOpener struct {
	Stdin io.Reader
}

// NewFileOpener returns an Opener reading "-" from stdin, or from os.Stdin when stdin is nil.
func NewFileOpener(stdin io.Reader) *FileOpener {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &FileOpener{Stdin: stdin}
}

// Open returns a reader for name. It fails closed when the file does not exist.
func (o *FileOpener) Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(o.Stdin), nil
	}

	file, err := os.Open(filepath.Clean(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, name)
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return file, nil
}

// VerifyFile accepts "-" or the path of an existing regular file.
func VerifyFile(name string) error {
	if name == Stdin {
		return nil
	}
	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotExist, name)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", name)
	}
	return nil
}

// VerifyDir accepts the path of an existing directory.
func VerifyDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("path %s does not exist or is not a directory", path)
	}
	return nil
}

// ReadAll opens name and reads it fully into memory.
// Cancelling ctx aborts the read and no partial data is returned.
func ReadAll(ctx context.Context, opener Opener, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := opener.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(&contextReader{ctx: ctx, r: rc})
	if err != nil {
		return nil, err
	}
	return data, nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
