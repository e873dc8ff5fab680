package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dse/emacs-custom-faces-file/internal/config"
	"github.com/dse/emacs-custom-faces-file/internal/custom"
)

// createRestoreCommand creates the restore command.
func createRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the custom file from its backup",
		Long:  "Restore the custom file from the backup taken before the first split save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fs := afero.NewOsFs()
			if !custom.HasBackup(fs, cfg.CustomFile) {
				return fmt.Errorf("no backup found for %s", cfg.CustomFile)
			}

			backupPath := custom.GetBackupPath(cfg.CustomFile)
			if err := custom.RestoreFromBackup(fs, backupPath, cfg.CustomFile); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", cfg.CustomFile, backupPath)
			return nil
		},
	}
}
