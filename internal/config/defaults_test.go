package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.SplitFacesEnabled())
	assert.Equal(t, "custom.json", cfg.CustomFile)
}

func TestDefaultConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	cfg, err := LoadFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().FaceFile, cfg.FaceFile)
}
