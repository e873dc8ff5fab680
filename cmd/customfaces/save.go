package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dse/emacs-custom-faces-file/internal/config"
	"github.com/dse/emacs-custom-faces-file/internal/history"
	"github.com/dse/emacs-custom-faces-file/internal/hook"
	"github.com/dse/emacs-custom-faces-file/internal/logging"
	"github.com/dse/emacs-custom-faces-file/internal/saver"
	"github.com/dse/emacs-custom-faces-file/internal/storage"
)

// createSaveCommand creates the save command.
func createSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Perform a customization save",
		Long: "Read a save request from stdin and write variable settings to the " +
			"custom file and face settings to the resolved face file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd)
			if err != nil {
				return err
			}

			skipHistory, err := cmd.Flags().GetBool("no-history")
			if err != nil {
				return fmt.Errorf("failed to get no-history flag: %w", err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fs := afero.NewOsFs()
			ctx, err := logging.New(cmd.Context(), fs, logging.Config{
				Path:       cfg.Logging.Path,
				Level:      logging.ParseLevel(cfg.Logging.Level),
				MaxSize:    cfg.Logging.MaxSize,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAge:     cfg.Logging.MaxAge,
			})
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			request, err := hook.ParseSaveRequest(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to parse save request: %w", err)
			}

			mode, err := saver.ParseMode(request.Mode)
			if err != nil {
				return err //nolint:wrapcheck // mode errors include the bad value
			}

			// A configured display kind overrides whatever the host reports.
			displayKind := request.DisplayKind
			if cfg.DisplayKind != "" {
				displayKind = cfg.DisplayKind
			}

			s := saver.New(fs, cfg.CustomFile, saver.NewTemplateResolver(cfg.FaceFile))
			result, err := s.Save(ctx, request.Settings, mode, displayKind, request.Themes)
			if err != nil {
				return fmt.Errorf("save failed: %w", err)
			}

			if !skipHistory {
				recordSave(ctx, fs, history.Entry{
					Mode:        mode.String(),
					CustomPath:  result.CustomPath,
					FacePath:    result.FacePath,
					DisplayKind: displayKind,
					Themes:      request.Themes,
				})
			}

			if result.FacePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved variables to %s\n", result.CustomPath)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved faces to %s\n", result.FacePath)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved customizations to %s\n", result.CustomPath)
			}
			return nil
		},
	}

	cmd.Flags().Bool("no-history", false, "Skip recording the save in history")

	return cmd
}

// recordSave stores the save in history. Failures are logged rather
// than surfaced: the settings files are already written.
func recordSave(ctx context.Context, fs afero.Fs, entry history.Entry) {
	log := logging.Get(ctx)

	historyPath, err := storage.New(fs).GetHistoryPath()
	if err != nil {
		log.Warn().Err(err).Msg("failed to locate history database")
		return
	}

	manager, err := history.NewManager(ctx, historyPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to open history database")
		return
	}
	defer func() { _ = manager.Close() }()

	if err := manager.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("failed to record save")
	}
}
