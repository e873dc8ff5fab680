package saver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dse/emacs-custom-faces-file/internal/custom"
	"github.com/dse/emacs-custom-faces-file/internal/testutil"
)

func testSettings() *custom.Settings {
	settings := custom.NewSettings()
	settings.Variables["fill-column"] = json.RawMessage(`80`)
	settings.Faces["default"] = json.RawMessage(`{"foreground":"#eeeeee"}`)
	return settings
}

func TestSaveSplitsFacesIntoResolvedFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	resolver := NewTemplateResolver("faces-%s%{-theme}.json")
	s := New(fs, "custom.json", resolver)

	ctx, logs := testutil.NewTestContext(t)
	result, err := s.Save(ctx, testSettings(), SaveAll, "x", []string{"dark"})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "saved customizations")
	assert.Contains(t, logs.String(), "faces-x-dark.json")
	assert.Equal(t, "custom.json", result.CustomPath)
	assert.Equal(t, "faces-x-dark.json", result.FacePath)

	vars, err := custom.LoadFromFile(fs, "custom.json")
	require.NoError(t, err)
	assert.Contains(t, vars.Variables, "fill-column")
	assert.Empty(t, vars.Faces)

	faces, err := custom.LoadFromFile(fs, "faces-x-dark.json")
	require.NoError(t, err)
	assert.Contains(t, faces.Faces, "default")
	assert.Empty(t, faces.Variables)
}

func TestSaveFacesOnlyLeavesCustomFileAlone(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver("faces-%s.json"))

	_, err := s.Save(context.Background(), testSettings(), SaveFacesOnly, "tty", nil)
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "custom.json")
	require.NoError(t, err)
	assert.False(t, exists, "custom file should not be written in faces-only mode")

	faces, err := custom.LoadFromFile(fs, "faces-tty.json")
	require.NoError(t, err)
	assert.Contains(t, faces.Faces, "default")
}

func TestSaveVariablesOnlyLeavesFaceFileAlone(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver("faces-%s.json"))

	_, err := s.Save(context.Background(), testSettings(), SaveVariablesOnly, "x", nil)
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "faces-x.json")
	require.NoError(t, err)
	assert.False(t, exists, "face file should not be written in variables-only mode")
}

func TestSaveFacePathFollowsThemeChanges(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver("faces%{-theme}.json"))

	first, err := s.Save(context.Background(), testSettings(), SaveFacesOnly, "x", []string{"dark"})
	require.NoError(t, err)
	assert.Equal(t, "faces-dark.json", first.FacePath)

	second, err := s.Save(context.Background(), testSettings(), SaveFacesOnly, "x", []string{"light"})
	require.NoError(t, err)
	assert.Equal(t, "faces-light.json", second.FacePath)
}

func TestSaveWithoutTemplateWritesEverythingToCustomFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver(""))

	result, err := s.Save(context.Background(), testSettings(), SaveAll, "x", []string{"dark"})
	require.NoError(t, err)
	assert.Empty(t, result.FacePath)

	combined, err := custom.LoadFromFile(fs, "custom.json")
	require.NoError(t, err)
	assert.Contains(t, combined.Variables, "fill-column")
	assert.Contains(t, combined.Faces, "default")
}

func TestSaveCombinedPartialModePreservesOtherSection(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver(""))

	_, err := s.Save(context.Background(), testSettings(), SaveAll, "x", nil)
	require.NoError(t, err)

	updated := custom.NewSettings()
	updated.Variables["fill-column"] = json.RawMessage(`100`)

	_, err = s.Save(context.Background(), updated, SaveVariablesOnly, "x", nil)
	require.NoError(t, err)

	combined, err := custom.LoadFromFile(fs, "custom.json")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`100`), combined.Variables["fill-column"])
	assert.Contains(t, combined.Faces, "default", "faces must survive a variables-only save")
}

func TestSaveSplitBacksUpCombinedCustomFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	// A pre-split custom file still holding faces.
	combined := testSettings()
	require.NoError(t, custom.SaveToFile(fs, combined, "custom.json"))

	s := New(fs, "custom.json", NewTemplateResolver("faces-%s.json"))
	_, err := s.Save(context.Background(), testSettings(), SaveAll, "x", nil)
	require.NoError(t, err)

	// The rewrite drops faces from the custom file, so the original
	// must survive in the backup.
	assert.True(t, custom.HasBackup(fs, "custom.json"))
	backup, err := custom.LoadFromFile(fs, custom.GetBackupPath("custom.json"))
	require.NoError(t, err)
	assert.Contains(t, backup.Faces, "default")

	vars, err := custom.LoadFromFile(fs, "custom.json")
	require.NoError(t, err)
	assert.Empty(t, vars.Faces)
}

func TestSaveSplitKeepsFirstBackup(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, custom.SaveToFile(fs, testSettings(), "custom.json"))

	s := New(fs, "custom.json", NewTemplateResolver("faces-%s.json"))
	_, err := s.Save(context.Background(), testSettings(), SaveAll, "x", nil)
	require.NoError(t, err)

	// A second save must not clobber the pre-split backup with the
	// variables-only rewrite.
	_, err = s.Save(context.Background(), testSettings(), SaveVariablesOnly, "x", nil)
	require.NoError(t, err)

	backup, err := custom.LoadFromFile(fs, custom.GetBackupPath("custom.json"))
	require.NoError(t, err)
	assert.Contains(t, backup.Faces, "default")
}

func TestSaveSplitWithoutExistingCustomFileSkipsBackup(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := New(fs, "custom.json", NewTemplateResolver("faces-%s.json"))

	_, err := s.Save(context.Background(), testSettings(), SaveAll, "x", nil)
	require.NoError(t, err)

	assert.False(t, custom.HasBackup(fs, "custom.json"))
}

func TestTemplateResolver(t *testing.T) {
	t.Parallel()

	resolver := NewTemplateResolver("faces-%s%{-theme}.json")
	path, active := resolver.FacePath("x", []string{"dark", "solarized"})
	assert.True(t, active)
	assert.Equal(t, "faces-x-dark-solarized.json", path)

	_, active = NewTemplateResolver("").FacePath("x", nil)
	assert.False(t, active, "empty template must deactivate splitting")
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Mode
		wantErr bool
	}{
		{"empty means all", "", SaveAll, false},
		{"all", "all", SaveAll, false},
		{"variables", "variables", SaveVariablesOnly, false},
		{"faces", "faces", SaveFacesOnly, false},
		{"unknown", "styles", SaveAll, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mode, err := ParseMode(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "all", SaveAll.String())
	assert.Equal(t, "variables", SaveVariablesOnly.String())
	assert.Equal(t, "faces", SaveFacesOnly.String())
}
