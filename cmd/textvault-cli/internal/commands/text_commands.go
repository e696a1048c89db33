package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textvault/internal/app"
	"github.com/MGTheTrain/textvault/internal/domain/textcrypto"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/source"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for signing, verifying and encrypting text via CLI.
type TextCommandHandler struct {
	logger logger.Logger
}

// NewTextCommandHandler initializes and returns a TextCommandHandler instance with configured logger.
func NewTextCommandHandler() (*TextCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TextCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *TextCommandHandler) service(cmd *cobra.Command) (textcrypto.TextService, error) {
	return app.NewTextService(opener(cmd), nil, commandHandler.logger)
}

func (commandHandler *TextCommandHandler) fail(err error) error {
	commandHandler.logger.Error(err)
	return err
}

func algorithmFlag(cmd *cobra.Command) (textcrypto.Algorithm, error) {
	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("invalid format flag: %w", err)
	}
	return textcrypto.ParseAlgorithm(name)
}

// SignCmd signs the input and prints the signature
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	algorithm, err := algorithmFlag(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}
	input, err := sourceFlag(cmd, "input")
	if err != nil {
		return commandHandler.fail(err)
	}
	key, err := sourceFlag(cmd, "key")
	if err != nil {
		return commandHandler.fail(err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}

	signature, err := service.Sign(cmd.Context(), input, key, algorithm)
	if err != nil {
		return commandHandler.fail(err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signature)
	return err
}

// VerifyCmd verifies a signature over the input and prints the result
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	algorithm, err := algorithmFlag(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}
	input, err := sourceFlag(cmd, "input")
	if err != nil {
		return commandHandler.fail(err)
	}
	key, err := sourceFlag(cmd, "key")
	if err != nil {
		return commandHandler.fail(err)
	}
	signature, err := stringFlag(cmd, "signature")
	if err != nil {
		return commandHandler.fail(err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}

	valid, err := service.Verify(cmd.Context(), input, key, algorithm, signature)
	if err != nil {
		return commandHandler.fail(err)
	}

	if valid {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "✓ Signature verified")
	} else {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "✗ Signature not verified")
	}
	return err
}

// GenerateCmd generates key material and persists it in the selected directory
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	algorithm, err := algorithmFlag(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}
	outputDir, err := stringFlag(cmd, "output-dir")
	if err != nil {
		return commandHandler.fail(err)
	}
	if err := source.VerifyDir(outputDir); err != nil {
		return commandHandler.fail(err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}

	keys, err := service.GenerateKeys(algorithm)
	if err != nil {
		return commandHandler.fail(err)
	}

	for _, key := range keys {
		keyFilePath := filepath.Join(outputDir, key.Name)
		if err := os.WriteFile(keyFilePath, key.Data, 0600); err != nil {
			return commandHandler.fail(fmt.Errorf("%w: %w", textcrypto.ErrIO, err))
		}
		commandHandler.logger.Info("Key saved to ", keyFilePath)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), keyFilePath); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd encrypts the input and prints the encoded envelope
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	input, err := sourceFlag(cmd, "input")
	if err != nil {
		return commandHandler.fail(err)
	}
	key, err := sourceFlag(cmd, "key")
	if err != nil {
		return commandHandler.fail(err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}

	ciphertext, err := service.Encrypt(cmd.Context(), input, key)
	if err != nil {
		return commandHandler.fail(err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return err
}

// DecryptCmd decrypts an encoded envelope read from the input and prints the plaintext
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	input, err := sourceFlag(cmd, "input")
	if err != nil {
		return commandHandler.fail(err)
	}
	key, err := sourceFlag(cmd, "key")
	if err != nil {
		return commandHandler.fail(err)
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		return commandHandler.fail(err)
	}

	plaintext, err := service.Decrypt(cmd.Context(), input, key)
	if err != nil {
		return commandHandler.fail(err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), plaintext)
	return err
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command) error {
	handler, err := NewTextCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create text command handler: %w", err)
	}

	var algorithms []string
	for _, algorithm := range textcrypto.Algorithms() {
		algorithms = append(algorithms, algorithm.String())
	}
	formatUsage := fmt.Sprintf("Algorithm to use (%s)", strings.Join(algorithms, ", "))

	var textCmd = &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign text and print the signature",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	signCmd.Flags().StringP("key", "k", "", "Path to the signing key")
	signCmd.Flags().StringP("format", "f", textcrypto.AlgorithmBlake3.String(), formatUsage)
	textCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	verifyCmd.Flags().StringP("key", "k", "", "Path to the verification key")
	verifyCmd.Flags().StringP("format", "f", textcrypto.AlgorithmBlake3.String(), formatUsage)
	verifyCmd.Flags().StringP("signature", "s", "", "Signature to verify")
	textCmd.AddCommand(verifyCmd)

	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate key material",
		RunE:  handler.GenerateCmd,
	}
	generateCmd.Flags().StringP("output-dir", "o", "", "Existing directory to store the keys")
	generateCmd.Flags().StringP("format", "f", textcrypto.AlgorithmBlake3.String(), formatUsage)
	textCmd.AddCommand(generateCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with ChaCha20-Poly1305",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	encryptCmd.Flags().StringP("key", "k", "", "Path to the encryption key")
	textCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with ChaCha20-Poly1305",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	decryptCmd.Flags().StringP("key", "k", "", "Path to the decryption key")
	textCmd.AddCommand(decryptCmd)

	rootCmd.AddCommand(textCmd)
	return nil
}
