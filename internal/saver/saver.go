// Package saver orchestrates the split save: variable settings go to
// the configured custom file, face settings go to a separately
// resolved face file when the feature is active.
package saver

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/dse/emacs-custom-faces-file/internal/custom"
	"github.com/dse/emacs-custom-faces-file/internal/logging"
	"github.com/dse/emacs-custom-faces-file/internal/template"
)

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown save mode")

// Mode selects which settings category a save call writes.
type Mode int

const (
	// SaveAll writes both variable and face settings.
	SaveAll Mode = iota
	// SaveVariablesOnly writes variable settings and leaves faces alone.
	SaveVariablesOnly
	// SaveFacesOnly writes face settings and leaves variables alone.
	SaveFacesOnly
)

func (m Mode) String() string {
	switch m {
	case SaveAll:
		return "all"
	case SaveVariablesOnly:
		return "variables"
	case SaveFacesOnly:
		return "faces"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name from a save request into a Mode. An
// empty name means save everything.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "all":
		return SaveAll, nil
	case "variables":
		return SaveVariablesOnly, nil
	case "faces":
		return SaveFacesOnly, nil
	default:
		return SaveAll, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// PathResolver decides where face settings are written. The second
// return value is false when face splitting is inactive and faces
// belong in the custom file.
type PathResolver interface {
	FacePath(displayKind string, themes []string) (string, bool)
}

// TemplateResolver resolves face paths from a configured template. An
// empty template deactivates splitting.
type TemplateResolver struct {
	Template string
}

// NewTemplateResolver creates a resolver for the given template.
func NewTemplateResolver(tmpl string) *TemplateResolver {
	return &TemplateResolver{Template: tmpl}
}

// FacePath implements PathResolver.
func (r *TemplateResolver) FacePath(displayKind string, themes []string) (string, bool) {
	if r.Template == "" {
		return "", false
	}
	return template.Resolve(r.Template, displayKind, themes), true
}

// Result reports where a save call wrote its output. FacePath is
// empty when faces were not split out.
type Result struct {
	CustomPath string
	FacePath   string
}

// Saver performs split saves over a filesystem.
type Saver struct {
	fs         afero.Fs
	resolver   PathResolver
	customFile string
}

// New creates a Saver writing variable settings to customFile and
// face settings wherever resolver directs them.
func New(fs afero.Fs, customFile string, resolver PathResolver) *Saver {
	return &Saver{fs: fs, customFile: customFile, resolver: resolver}
}

// Save writes the requested settings category. Display kind and
// themes are read fresh on every call, so the face path follows theme
// changes made at runtime.
func (s *Saver) Save(ctx context.Context, settings *custom.Settings, mode Mode,
	displayKind string, themes []string,
) (*Result, error) {
	log := logging.Get(ctx)

	facePath, split := s.resolver.FacePath(displayKind, themes)
	if !split {
		result, err := s.saveCombined(settings, mode)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("mode", mode.String()).
			Str("custom_file", result.CustomPath).
			Msg("saved customizations")
		return result, nil
	}

	result := &Result{CustomPath: s.customFile, FacePath: facePath}

	if mode == SaveAll || mode == SaveVariablesOnly {
		if err := s.backupCustomFile(ctx); err != nil {
			return nil, err
		}
		if err := custom.SaveToFile(s.fs, settings.VariablesOnly(), s.customFile); err != nil {
			return nil, fmt.Errorf("failed to save variable settings: %w", err)
		}
	}

	if mode == SaveAll || mode == SaveFacesOnly {
		if err := custom.SaveToFile(s.fs, settings.FacesOnly(), facePath); err != nil {
			return nil, fmt.Errorf("failed to save face settings: %w", err)
		}
	}

	log.Info().
		Str("mode", mode.String()).
		Str("custom_file", result.CustomPath).
		Str("face_file", result.FacePath).
		Str("display", displayKind).
		Strs("themes", themes).
		Msg("saved customizations")

	return result, nil
}

// backupCustomFile keeps a one-time backup of the custom file before
// the first split save overwrites it. A pre-split custom file may
// still hold faces that the variables-only rewrite drops.
func (s *Saver) backupCustomFile(ctx context.Context) error {
	exists, err := afero.Exists(s.fs, s.customFile)
	if err != nil {
		return fmt.Errorf("failed to check custom file: %w", err)
	}
	if !exists || custom.HasBackup(s.fs, s.customFile) {
		return nil
	}

	backupPath, err := custom.CreateBackup(s.fs, s.customFile)
	if err != nil {
		return fmt.Errorf("failed to back up custom file: %w", err)
	}

	logging.Get(ctx).Info().
		Str("custom_file", s.customFile).
		Str("backup", backupPath).
		Msg("backed up custom file before split save")
	return nil
}

// saveCombined writes to the custom file alone. Partial modes update
// one section in place so the other survives the write.
func (s *Saver) saveCombined(settings *custom.Settings, mode Mode) (*Result, error) {
	result := &Result{CustomPath: s.customFile}

	document := settings
	if mode != SaveAll {
		existing := custom.NewSettings()
		if exists, _ := afero.Exists(s.fs, s.customFile); exists {
			loaded, err := custom.LoadFromFile(s.fs, s.customFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load existing settings: %w", err)
			}
			existing = loaded
		}

		switch mode {
		case SaveVariablesOnly:
			existing.Variables = settings.Variables
		case SaveFacesOnly:
			existing.Faces = settings.Faces
		case SaveAll:
		}
		document = existing
	}

	if err := custom.SaveToFile(s.fs, document, s.customFile); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return result, nil
}
