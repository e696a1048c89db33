package commands

import (
	"fmt"

	"github.com/MGTheTrain/textvault/internal/pkg/genpass"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// GenpassCommandHandler encapsulates logic for generating passwords via CLI.
type GenpassCommandHandler struct {
	logger logger.Logger
}

// NewGenpassCommandHandler initializes and returns a GenpassCommandHandler instance with configured logger.
func NewGenpassCommandHandler() (*GenpassCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &GenpassCommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenpassCmd prints a random password
func (commandHandler *GenpassCommandHandler) GenpassCmd(cmd *cobra.Command, _ []string) error {
	opts := genpass.DefaultOptions()

	var err error
	if opts.Length, err = cmd.Flags().GetInt("length"); err != nil {
		return fmt.Errorf("invalid length flag: %w", err)
	}

	disabled := map[string]*bool{
		"no-uppercase": &opts.Uppercase,
		"no-lowercase": &opts.Lowercase,
		"no-number":    &opts.Number,
		"no-symbol":    &opts.Symbol,
	}
	for name, class := range disabled {
		off, err := cmd.Flags().GetBool(name)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", name, err)
		}
		*class = !off
	}

	password, err := genpass.Generate(nil, opts)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
	return err
}

// InitGenpassCommands registers the genpass command
func InitGenpassCommands(rootCmd *cobra.Command) error {
	handler, err := NewGenpassCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create genpass command handler: %w", err)
	}

	var genpassCmd = &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE:  handler.GenpassCmd,
	}
	genpassCmd.Flags().IntP("length", "l", genpass.DefaultOptions().Length, "Password length")
	genpassCmd.Flags().Bool("no-uppercase", false, "Exclude uppercase letters")
	genpassCmd.Flags().Bool("no-lowercase", false, "Exclude lowercase letters")
	genpassCmd.Flags().Bool("no-number", false, "Exclude numbers")
	genpassCmd.Flags().Bool("no-symbol", false, "Exclude symbols")
	rootCmd.AddCommand(genpassCmd)

	return nil
}
