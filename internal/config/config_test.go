package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fundraiser_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Len(t, cfg.DefaultRoles, 4)
	assert.Equal(t, "Volunteers list", cfg.DefaultRoles[0].Label)
	assert.Equal(t, 8, cfg.DefaultRoles[0].MinVolunteers)
	assert.Equal(t, 2, cfg.WeeksBack)
	assert.Equal(t, 12, cfg.WeeksAhead)

	require.NoError(t, Validate(cfg))
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
organizationName: Test Masjid
defaultRoles:
  - label: Volunteers list
    minVolunteers: 6
  - label: Greeters
    minVolunteers: 2
weeksBack: 1
weeksAhead: 8
eventTemplates:
  - name: jumuah
    details: Jumuah Appeal
    rrule: FREQ=WEEKLY;BYDAY=FR
exportDir: /tmp/exports
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Masjid", cfg.OrganizationName)
	require.Len(t, cfg.DefaultRoles, 2)
	assert.Equal(t, 6, cfg.DefaultRoles[0].MinVolunteers)
	assert.Equal(t, 1, cfg.WeeksBack)
	assert.Equal(t, 8, cfg.WeeksAhead)
	require.Len(t, cfg.EventTemplates, 1)
	assert.Equal(t, "Jumuah Appeal", cfg.EventTemplates[0].Details)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `organizationName: Test Masjid`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Masjid", cfg.OrganizationName)
	assert.Len(t, cfg.DefaultRoles, 4)
	assert.Equal(t, 2, cfg.WeeksBack)
	assert.Equal(t, 12, cfg.WeeksAhead)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	path := writeConfig(t, `
eventTemplates:
  - name: broken
    details: Broken event
    rrule: FREQ=BOGUS
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadFromPath_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
defaultRoles:
  - minVolunteers: 3
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_NegativeMinimum(t *testing.T) {
	path := writeConfig(t, `
defaultRoles:
  - label: Volunteers list
    minVolunteers: -1
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestLoadWithEnv_MissingFileFallsBackToDefaults(t *testing.T) {
	// Run from an empty directory with no config anywhere nearby
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, Default().OrganizationName, cfg.OrganizationName)
	assert.Len(t, cfg.DefaultRoles, 4)
}

func TestLoadFromPath_Unreadable(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
