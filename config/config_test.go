package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ips.yaml")
	doc := `
mcda_weights:
  degree: 0.5
  betweenness: 0.25
geolocation: PreferCloser
change_no_more: 10
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.MCDAWeights.Degree)
	assert.Equal(t, 0.25, cfg.MCDAWeights.Betweenness)
	assert.Equal(t, GeoLocationPreferCloser, cfg.Geolocation)
	assert.Equal(t, uint32(10), cfg.ChangeNoMore)
	// Untouched keys keep their Default() value.
	assert.Equal(t, uint32(1), cfg.ChangeAtLeast)
	assert.Equal(t, 1.25, cfg.BridgeThresholdAdjustment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("change_at_least: [this, is, a, list]"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultGeolocationOff(t *testing.T) {
	assert.Equal(t, GeoLocationOff, Default().Geolocation)
}
