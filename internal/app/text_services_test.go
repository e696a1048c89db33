//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/codec"
	"github.com/MGTheTrain/textvault/internal/pkg/source"
	"github.com/MGTheTrain/textvault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textServiceFixture struct {
	service textcrypto.TextService
	dir     string
}

func setupTextService(t *testing.T, stdin string) *textServiceFixture {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	opener := source.NewFileOpener(strings.NewReader(stdin))

	service, err := NewTextService(opener, nil, logger)
	require.NoError(t, err)

	return &textServiceFixture{service: service, dir: t.TempDir()}
}

func (f *textServiceFixture) writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, testutil.CreateTestFile(path, content))
	return path
}

func (f *textServiceFixture) writeKeys(t *testing.T, keys []textcrypto.KeyMaterial) map[string]string {
	t.Helper()
	paths := make(map[string]string, len(keys))
	for _, key := range keys {
		paths[key.Name] = f.writeFile(t, key.Name, key.Data)
	}
	return paths
}

func TestTextService_Blake3(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()

	keyPath := f.writeFile(t, "zero.key", make([]byte, textcrypto.KeySize))
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))

	signature, err := f.service.Sign(ctx, inputPath, keyPath, textcrypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Equal(t, "9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk", signature)

	valid, err := f.service.Verify(ctx, inputPath, keyPath, textcrypto.AlgorithmBlake3, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	raw, err := codec.FromBase64URL(signature)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	valid, err = f.service.Verify(ctx, inputPath, keyPath, textcrypto.AlgorithmBlake3, codec.ToBase64URL(raw))
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestTextService_Blake3GeneratedKey(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()

	keys, err := f.service.GenerateKeys(textcrypto.AlgorithmBlake3)
	require.NoError(t, err)
	paths := f.writeKeys(t, keys)
	inputPath := f.writeFile(t, "input.txt", []byte("some text"))

	signature, err := f.service.Sign(ctx, inputPath, paths[textcrypto.Blake3KeyFile], textcrypto.AlgorithmBlake3)
	require.NoError(t, err)

	valid, err := f.service.Verify(ctx, inputPath, paths[textcrypto.Blake3KeyFile], textcrypto.AlgorithmBlake3, signature)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestTextService_Ed25519(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()

	keys, err := f.service.GenerateKeys(textcrypto.AlgorithmEd25519)
	require.NoError(t, err)
	paths := f.writeKeys(t, keys)
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))

	signature, err := f.service.Sign(ctx, inputPath, paths[textcrypto.Ed25519PrivateKeyFile], textcrypto.AlgorithmEd25519)
	require.NoError(t, err)
	assert.NotContains(t, signature, "=")

	raw, err := codec.FromBase64URL(signature)
	require.NoError(t, err)
	assert.Len(t, raw, textcrypto.Ed25519SignatureSize)

	valid, err := f.service.Verify(ctx, inputPath, paths[textcrypto.Ed25519PublicKeyFile], textcrypto.AlgorithmEd25519, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	t.Run("TruncatedSignature", func(t *testing.T) {
		_, err := f.service.Verify(ctx, inputPath, paths[textcrypto.Ed25519PublicKeyFile], textcrypto.AlgorithmEd25519, codec.ToBase64URL(raw[:32]))
		assert.ErrorIs(t, err, textcrypto.ErrInvalidSignatureLength)
	})

	t.Run("InvalidPublicKey", func(t *testing.T) {
		invalid := make([]byte, textcrypto.KeySize)
		invalid[0] = 2
		badKeyPath := f.writeFile(t, "bad.pk", invalid)

		_, err := f.service.Verify(ctx, inputPath, badKeyPath, textcrypto.AlgorithmEd25519, signature)
		assert.ErrorIs(t, err, textcrypto.ErrInvalidPublicKey)
	})
}

func TestTextService_ChaCha20(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()

	keyPath := f.writeFile(t, "chacha20.key", bytes.Repeat([]byte{0x42}, textcrypto.KeySize))
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))

	ciphertext, err := f.service.Encrypt(ctx, inputPath, keyPath)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "=")
	assert.NotContains(t, ciphertext, "+")
	assert.NotContains(t, ciphertext, "/")

	// a trailing newline, as left by shell redirection, is ignored
	cipherPath := f.writeFile(t, "cipher.txt", []byte(ciphertext+"\n"))

	plaintext, err := f.service.Decrypt(ctx, cipherPath, keyPath)
	require.NoError(t, err)
	assert.Equal(t, "hello world", plaintext)

	t.Run("WrongKey", func(t *testing.T) {
		otherKeyPath := f.writeFile(t, "other.key", bytes.Repeat([]byte{0x43}, textcrypto.KeySize))

		_, err := f.service.Decrypt(ctx, cipherPath, otherKeyPath)
		assert.ErrorIs(t, err, textcrypto.ErrAuthenticationFailed)
	})

	t.Run("ShortEnvelope", func(t *testing.T) {
		shortPath := f.writeFile(t, "short.txt", []byte(codec.ToBase64URL([]byte("tiny"))))

		_, err := f.service.Decrypt(ctx, shortPath, keyPath)
		assert.ErrorIs(t, err, textcrypto.ErrMalformedEnvelope)
	})

	t.Run("InvalidEncoding", func(t *testing.T) {
		paddedPath := f.writeFile(t, "padded.txt", []byte("aGVsbG8gd29ybGQ/Pg=="))

		_, err := f.service.Decrypt(ctx, paddedPath, keyPath)
		assert.ErrorIs(t, err, textcrypto.ErrInvalidEncoding)
	})

	t.Run("NonUTF8Plaintext", func(t *testing.T) {
		binaryPath := f.writeFile(t, "binary.bin", []byte{0xff, 0xfe, 0xfd})
		encrypted, err := f.service.Encrypt(ctx, binaryPath, keyPath)
		require.NoError(t, err)
		encryptedPath := f.writeFile(t, "binary.enc", []byte(encrypted))

		_, err = f.service.Decrypt(ctx, encryptedPath, keyPath)
		assert.ErrorIs(t, err, textcrypto.ErrNonUTF8Plaintext)
	})
}

func TestTextService_Stdin(t *testing.T) {
	f := setupTextService(t, "hello world")
	keyPath := f.writeFile(t, "zero.key", make([]byte, textcrypto.KeySize))

	signature, err := f.service.Sign(context.Background(), source.Stdin, keyPath, textcrypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Equal(t, "9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk", signature)
}

func TestTextService_UnsupportedOperation(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()
	keyPath := f.writeFile(t, "key", make([]byte, textcrypto.KeySize))
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))

	_, err := f.service.Sign(ctx, inputPath, keyPath, textcrypto.AlgorithmChaCha20)
	assert.ErrorIs(t, err, textcrypto.ErrUnsupportedOperation)

	_, err = f.service.Verify(ctx, inputPath, keyPath, textcrypto.AlgorithmChaCha20, "AAAA")
	assert.ErrorIs(t, err, textcrypto.ErrUnsupportedOperation)

	_, err = f.service.Sign(ctx, inputPath, keyPath, textcrypto.Algorithm("rsa"))
	assert.ErrorIs(t, err, textcrypto.ErrUnsupportedOperation)

	_, err = f.service.GenerateKeys(textcrypto.Algorithm("rsa"))
	assert.ErrorIs(t, err, textcrypto.ErrUnsupportedOperation)
}

func TestTextService_KeyAndInputErrors(t *testing.T) {
	f := setupTextService(t, "")
	ctx := context.Background()
	shortKeyPath := f.writeFile(t, "short.key", make([]byte, textcrypto.KeySize-1))
	keyPath := f.writeFile(t, "key", make([]byte, textcrypto.KeySize))
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))
	missing := filepath.Join(f.dir, "missing.txt")

	for _, algorithm := range []textcrypto.Algorithm{textcrypto.AlgorithmBlake3, textcrypto.AlgorithmEd25519} {
		_, err := f.service.Sign(ctx, inputPath, shortKeyPath, algorithm)
		assert.ErrorIs(t, err, textcrypto.ErrKeyFormat, algorithm.String())
	}
	_, err := f.service.Encrypt(ctx, inputPath, shortKeyPath)
	assert.ErrorIs(t, err, textcrypto.ErrKeyFormat)

	_, err = f.service.Sign(ctx, missing, keyPath, textcrypto.AlgorithmBlake3)
	assert.ErrorIs(t, err, textcrypto.ErrIO)
	assert.ErrorIs(t, err, source.ErrNotExist)

	_, err = f.service.Encrypt(ctx, inputPath, missing)
	assert.ErrorIs(t, err, textcrypto.ErrIO)

	_, err = f.service.Verify(ctx, inputPath, keyPath, textcrypto.AlgorithmBlake3, "not base64!")
	assert.ErrorIs(t, err, textcrypto.ErrInvalidEncoding)
}

func TestTextService_CancelledContext(t *testing.T) {
	f := setupTextService(t, "")
	keyPath := f.writeFile(t, "key", make([]byte, textcrypto.KeySize))
	inputPath := f.writeFile(t, "input.txt", []byte("hello world"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	signature, err := f.service.Sign(ctx, inputPath, keyPath, textcrypto.AlgorithmBlake3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, signature)
}

func TestTextService_EntropyFailure(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key")
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(keyPath, make([]byte, textcrypto.KeySize), 0600))
	require.NoError(t, os.WriteFile(inputPath, []byte("hello world"), 0600))

	service, err := NewTextService(source.NewFileOpener(nil), testutil.FailingReader{}, logger)
	require.NoError(t, err)

	_, err = service.Encrypt(context.Background(), inputPath, keyPath)
	assert.ErrorIs(t, err, textcrypto.ErrEntropySource)

	_, err = service.GenerateKeys(textcrypto.AlgorithmChaCha20)
	assert.ErrorIs(t, err, textcrypto.ErrEntropySource)
}
