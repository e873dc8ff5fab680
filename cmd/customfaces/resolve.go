package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dse/emacs-custom-faces-file/internal/config"
	"github.com/dse/emacs-custom-faces-file/internal/template"
)

// createResolveCommand creates the resolve command.
func createResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved face file path",
		Long: "Resolve the face-file template against a display kind and theme " +
			"list without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmpl, err := cmd.Flags().GetString("template")
			if err != nil {
				return fmt.Errorf("failed to get template flag: %w", err)
			}

			if tmpl == "" {
				configPath, err := configPathFromCommand(cmd)
				if err != nil {
					return err
				}
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				tmpl = cfg.FaceFile
			}

			if tmpl == "" {
				return errors.New("no face-file template configured")
			}

			displayKind, err := cmd.Flags().GetString("display")
			if err != nil {
				return fmt.Errorf("failed to get display flag: %w", err)
			}

			themes, err := cmd.Flags().GetStringArray("theme")
			if err != nil {
				return fmt.Errorf("failed to get theme flag: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), template.Resolve(tmpl, displayKind, themes))
			return nil
		},
	}

	cmd.Flags().String("template", "", "Face file template (defaults to the configured one)")
	cmd.Flags().String("display", template.DefaultDisplayKind, "Display kind reported by the host")
	cmd.Flags().StringArray("theme", nil, "Enabled theme, repeatable, in activation order")

	return cmd
}
