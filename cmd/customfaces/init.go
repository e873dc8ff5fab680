package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dse/emacs-custom-faces-file/internal/config"
	"github.com/dse/emacs-custom-faces-file/internal/prompt"
	"github.com/dse/emacs-custom-faces-file/internal/template"
)

// createInitCommand creates the init command.
func createInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long:  "Write a starter configuration file, prompting for the face-file template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd)
			if err != nil {
				return err
			}

			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			useDefaults, err := cmd.Flags().GetBool("defaults")
			if err != nil {
				return fmt.Errorf("failed to get defaults flag: %w", err)
			}

			fs := afero.NewOsFs()
			if exists, _ := afero.Exists(fs, configPath); exists && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
			}

			var data []byte
			if useDefaults {
				data, err = config.DefaultConfigYAML()
				if err != nil {
					return fmt.Errorf("failed to build default config: %w", err)
				}
			} else {
				cfg := config.DefaultConfig()

				prompter := prompt.NewLinerPrompter()
				defer func() { _ = prompter.Close() }()

				tmpl, err := prompt.TextInputWithDefault(prompter, "Face file template", cfg.FaceFile)
				if err != nil {
					return fmt.Errorf("failed to read template: %w", err)
				}
				if err := template.Validate(tmpl); err != nil {
					return fmt.Errorf("invalid face-file template %q: %w", tmpl, err)
				}
				cfg.FaceFile = tmpl

				data, err = yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
			}

			if err := afero.WriteFile(fs, configPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("defaults", false, "Accept defaults without prompting")

	return cmd
}
