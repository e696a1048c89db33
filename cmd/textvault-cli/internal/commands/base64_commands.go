package commands

import (
	"fmt"

	"github.com/MGTheTrain/textvault/internal/app"
	"github.com/MGTheTrain/textvault/internal/pkg/codec"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/source"

	"github.com/spf13/cobra"
)

// Base64CommandHandler encapsulates logic for base64 encoding and decoding via CLI.
type Base64CommandHandler struct {
	logger logger.Logger
}

// NewBase64CommandHandler initializes and returns a Base64CommandHandler instance with configured logger.
func NewBase64CommandHandler() (*Base64CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &Base64CommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *Base64CommandHandler) prepare(cmd *cobra.Command) (*app.Base64Service, string, codec.Format, error) {
	input, err := sourceFlag(cmd, "input")
	if err != nil {
		return nil, "", "", err
	}

	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid format flag: %w", err)
	}
	format, err := codec.ParseFormat(name)
	if err != nil {
		return nil, "", "", err
	}

	service, err := app.NewBase64Service(opener(cmd), commandHandler.logger)
	if err != nil {
		return nil, "", "", err
	}
	return service, input, format, nil
}

// EncodeCmd encodes the input and prints the result
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	service, input, format, err := commandHandler.prepare(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	encoded, err := service.Encode(cmd.Context(), input, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

// DecodeCmd decodes the input and prints the text
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	service, input, format, err := commandHandler.prepare(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decoded, err := service.Decode(cmd.Context(), input, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), decoded)
	return err
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command) error {
	handler, err := NewBase64CommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create base64 command handler: %w", err)
	}

	var base64Cmd = &cobra.Command{
		Use:   "base64",
		Short: "Encode and decode base64",
	}

	var encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		RunE:  handler.EncodeCmd,
	}
	encodeCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	encodeCmd.Flags().StringP("format", "f", string(codec.FormatStandard), "Alphabet to use (standard, urlsafe)")
	base64Cmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input to text",
		RunE:  handler.DecodeCmd,
	}
	decodeCmd.Flags().StringP("input", "i", source.Stdin, "Input file, or - for stdin")
	decodeCmd.Flags().StringP("format", "f", string(codec.FormatStandard), "Alphabet to use (standard, urlsafe)")
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
	return nil
}
