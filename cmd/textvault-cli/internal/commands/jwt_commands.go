package commands

import (
	"encoding/json"
	"fmt"

	"github.com/MGTheTrain/textvault/internal/domain/token"
	jwtprocessor "github.com/MGTheTrain/textvault/internal/infrastructure/token"
	"github.com/MGTheTrain/textvault/internal/pkg/config"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/strutil"

	"github.com/spf13/cobra"
)

// JWTCommandHandler encapsulates logic for issuing and verifying tokens via CLI.
type JWTCommandHandler struct {
	logger logger.Logger
}

// NewJWTCommandHandler initializes and returns a JWTCommandHandler instance with configured logger.
func NewJWTCommandHandler() (*JWTCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &JWTCommandHandler{
		logger: loggerInstance,
	}, nil
}

// processor reads the JWT settings at run time so the other command groups work without them
func (commandHandler *JWTCommandHandler) processor() (token.Processor, error) {
	settings, err := config.ReadJWTSettingsFromEnv()
	if err != nil {
		return nil, err
	}
	return jwtprocessor.NewJWTProcessor(settings, commandHandler.logger)
}

// SignCmd issues a token and prints it
func (commandHandler *JWTCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	subject, err := stringFlag(cmd, "sub")
	if err != nil {
		return err
	}
	audience, err := stringFlag(cmd, "aud")
	if err != nil {
		return err
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}
	userID, err := cmd.Flags().GetUint64("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}
	exp, err := stringFlag(cmd, "exp")
	if err != nil {
		return err
	}
	ttl, err := strutil.ParseDuration(exp)
	if err != nil {
		return err
	}

	processor, err := commandHandler.processor()
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	signed, err := processor.Sign(token.SignRequest{
		Subject:  subject,
		Audience: audience,
		Role:     role,
		UserID:   userID,
	}, ttl)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
	return err
}

// VerifyCmd verifies a token and prints its claims as JSON
func (commandHandler *JWTCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	tokenString, err := stringFlag(cmd, "token")
	if err != nil {
		return err
	}

	processor, err := commandHandler.processor()
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	claims, err := processor.Verify(tokenString)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	out, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// InitJWTCommands registers the jwt command group
func InitJWTCommands(rootCmd *cobra.Command) error {
	handler, err := NewJWTCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create JWT command handler: %w", err)
	}

	var jwtCmd = &cobra.Command{
		Use:   "jwt",
		Short: "Issue and verify HS256 tokens",
		Long: `Issue and verify HS256 tokens.

The issuer and secret are read from TEXTVAULT_JWT_ISSUER and TEXTVAULT_JWT_SECRET,
or from a .env file in the working directory.`,
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Issue a token",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().String("sub", "", "Subject of the token")
	signCmd.Flags().String("aud", "", "Audience of the token")
	signCmd.Flags().String("exp", "1h", "Lifetime of the token, e.g. 30m, 1h, 7d")
	signCmd.Flags().String("role", "user", "Role claim")
	signCmd.Flags().Uint64("user-id", 0, "User id claim")
	jwtCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a token and print its claims",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("token", "t", "", "Token to verify")
	jwtCmd.AddCommand(verifyCmd)

	rootCmd.AddCommand(jwtCmd)
	return nil
}
