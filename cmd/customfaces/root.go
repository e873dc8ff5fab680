package main

import (
	"github.com/spf13/cobra"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "customfaces",
		Short: "Save editor face customizations to a separate file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	// Add persistent config flag
	rootCmd.PersistentFlags().StringP("config", "c", "customfaces.yml", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(
		createSaveCommand(),
		createResolveCommand(),
		createRestoreCommand(),
		createStatusCommand(),
		createValidateCommand(),
		createInitCommand(),
	)

	return rootCmd
}

func configPathFromCommand(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("config") //nolint:wrapcheck // flag name is self-descriptive
}
