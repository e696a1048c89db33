package commands

import (
	"fmt"

	"github.com/MGTheTrain/textvault/internal/pkg/config"
	"github.com/MGTheTrain/textvault/internal/pkg/logger"
	"github.com/MGTheTrain/textvault/internal/pkg/source"

	"github.com/spf13/cobra"
)

// setupLogger loads the optional .env file and initializes the shared logger from the environment
func setupLogger() (logger.Logger, error) {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		return nil, err
	}

	settings, err := config.ReadLoggerSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read logger settings: %w", err)
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// opener returns a source opener reading "-" from the command's input stream
func opener(cmd *cobra.Command) source.Opener {
	return source.NewFileOpener(cmd.InOrStdin())
}

// stringFlag reads a string flag and rejects empty values
func stringFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("flag --%s is required", name)
	}
	return value, nil
}

// sourceFlag reads a flag naming "-" or an existing file
func sourceFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := stringFlag(cmd, name)
	if err != nil {
		return "", err
	}
	if err := source.VerifyFile(value); err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}
