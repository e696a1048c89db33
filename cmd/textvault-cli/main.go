// Package main is the entry point for the textvault-cli application.
// It initializes the root command and registers the text, base64, genpass and jwt
// command groups, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/textvault/cmd/textvault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textvault-cli",
		Short: "Cryptographic text operations CLI tool",
		Long: `textvault-cli is a command-line tool for cryptographic text operations.
Supports BLAKE3 keyed-hash and Ed25519 signatures, ChaCha20-Poly1305 encryption,
key generation, base64 encoding, password generation and HS256 tokens.

Signatures and ciphertext are printed as URL-safe base64 without padding.
Logging is configured through TEXTVAULT_LOG_* environment variables and goes to stderr.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTextCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitBase64Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize base64 commands: %w", err)
	}

	if err := commands.InitGenpassCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize genpass commands: %w", err)
	}

	if err := commands.InitJWTCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize JWT commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
