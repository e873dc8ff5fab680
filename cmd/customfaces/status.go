package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dse/emacs-custom-faces-file/internal/config"
	"github.com/dse/emacs-custom-faces-file/internal/history"
	"github.com/dse/emacs-custom-faces-file/internal/storage"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configured paths and the last recorded save",
		Long:  "Show configured paths and the last recorded save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Custom file: %s\n", cfg.CustomFile)
			if cfg.SplitFacesEnabled() {
				_, _ = fmt.Fprintf(out, "Face file template: %s\n", cfg.FaceFile)
			} else {
				_, _ = fmt.Fprintln(out, "Face file template: (none, faces saved with variables)")
			}

			_, _ = fmt.Fprintf(out, "Last save: %s\n", lastSaveLine(cmd))
			return nil
		},
	}
}

func lastSaveLine(cmd *cobra.Command) string {
	ctx := cmd.Context()

	historyPath, err := storage.New(afero.NewOsFs()).GetHistoryPath()
	if err != nil {
		return "unavailable"
	}

	manager, err := history.NewManager(ctx, historyPath)
	if err != nil {
		return "unavailable"
	}
	defer func() { _ = manager.Close() }()

	last, err := manager.Last(ctx)
	if err != nil {
		if errors.Is(err, history.ErrNoHistory) {
			return "none recorded"
		}
		return "unavailable"
	}

	line := fmt.Sprintf("%s at %s -> %s", last.Mode,
		last.SavedAt.Format("2006-01-02 15:04:05"), last.CustomPath)
	if last.FacePath != "" {
		line += ", " + last.FacePath
	}
	if len(last.Themes) > 0 {
		line += " (themes: " + strings.Join(last.Themes, ", ") + ")"
	}
	return line
}
