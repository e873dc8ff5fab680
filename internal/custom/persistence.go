package custom

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// LoadFromFile loads a customization document from a JSON file.
func LoadFromFile(fs afero.Fs, filename string) (*Settings, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filename, err)
	}

	var settings Settings
	err = json.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", filename, err)
	}

	return &settings, nil
}

// SaveToFile saves a customization document to a JSON file, creating
// parent directories as needed.
func SaveToFile(fs afero.Fs, settings *Settings, filename string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	dir := filepath.Dir(filename)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	err = afero.WriteFile(fs, filename, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write settings to file %s: %w", filename, err)
	}
	return nil
}

// CreateBackup creates a simple .bak backup of the settings file.
func CreateBackup(fs afero.Fs, filename string) (string, error) {
	backupPath := GetBackupPath(filename)

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read original file: %w", err)
	}

	err = afero.WriteFile(fs, backupPath, data, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	return backupPath, nil
}

// HasBackup checks if a .bak backup exists for the given settings file.
func HasBackup(fs afero.Fs, filename string) bool {
	_, err := fs.Stat(GetBackupPath(filename))
	return err == nil
}

// GetBackupPath returns the backup file path for the given settings file.
func GetBackupPath(filename string) string {
	return filename + ".bak"
}

// RestoreFromBackup restores settings from a backup file.
func RestoreFromBackup(fs afero.Fs, backupPath, targetPath string) error {
	data, err := afero.ReadFile(fs, backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	err = afero.WriteFile(fs, targetPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write target file: %w", err)
	}

	return nil
}
