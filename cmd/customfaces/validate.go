package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dse/emacs-custom-faces-file/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd)
			if err != nil {
				return err
			}

			if _, err := config.Load(configPath); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %s\n", configPath)
			return nil
		},
	}
}
