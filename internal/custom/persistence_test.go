package custom

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	settings := NewSettings()
	settings.Variables["fill-column"] = json.RawMessage(`80`)
	settings.Faces["default"] = json.RawMessage(`{"family":"monospace"}`)

	require.NoError(t, SaveToFile(fs, settings, "/home/user/.config/editor/custom.json"))

	loaded, err := LoadFromFile(fs, "/home/user/.config/editor/custom.json")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`80`), loaded.Variables["fill-column"])
	assert.JSONEq(t, `{"family":"monospace"}`, string(loaded.Faces["default"]))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := LoadFromFile(fs, "/nope/custom.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/custom.json", []byte("not json"), 0o600))

	_, err := LoadFromFile(fs, "/custom.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings JSON")
}

func TestBackupAndRestore(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	original := []byte(`{"variables":{"tab-width":4}}`)
	require.NoError(t, afero.WriteFile(fs, "/custom.json", original, 0o600))

	backupPath, err := CreateBackup(fs, "/custom.json")
	require.NoError(t, err)
	assert.Equal(t, "/custom.json.bak", backupPath)
	assert.True(t, HasBackup(fs, "/custom.json"))

	// Clobber the original, then restore.
	require.NoError(t, afero.WriteFile(fs, "/custom.json", []byte(`{}`), 0o600))
	require.NoError(t, RestoreFromBackup(fs, backupPath, "/custom.json"))

	data, err := afero.ReadFile(fs, "/custom.json")
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestHasBackupWithoutBackup(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	assert.False(t, HasBackup(fs, "/custom.json"))
}

func TestCreateBackupMissingOriginal(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := CreateBackup(fs, "/custom.json")
	require.Error(t, err)
}
