package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadedSettings(t *testing.T, name, content string) *Settings {
	t.Helper()
	s := NewSettings()
	require.NoError(t, s.Load(writeSettings(t, name, content)))
	return s
}

func TestSettings_JSONLookup(t *testing.T) {
	s := loadedSettings(t, "settings.json", `{
		"api_url": "https://example.test",
		"verbose": true,
		"tags": "smoke\nregression"
	}`)
	s.AddIni("api_url", "", nil, options.IniString)
	s.AddIni("verbose", "", nil, options.IniBool)
	s.AddIni("tags", "", nil, options.IniLineList)

	v, err := s.Ini("api_url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", v)

	v, err = s.Ini("verbose")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = s.Ini("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"smoke", "regression"}, v)
}

func TestSettings_YAMLLookup(t *testing.T) {
	s := loadedSettings(t, "settings.yaml", "api_url: https://example.test\nverbose: \"yes\"\ntags:\n  - smoke\n  - regression\n")
	s.AddIni("api_url", "", nil, options.IniString)
	s.AddIni("verbose", "", nil, options.IniBool)
	s.AddIni("tags", "", nil, options.IniLineList)

	v, err := s.Ini("api_url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", v)

	// "yes" is not a strict bool; a malformed ini value surfaces as an error
	// and the resolution chain treats it as absent.
	_, err = s.Ini("verbose")
	assert.Error(t, err)

	v, err = s.Ini("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"smoke", "regression"}, v)
}

func TestSettings_BoolFromString(t *testing.T) {
	s := loadedSettings(t, "settings.json", `{"verbose": "true"}`)
	s.AddIni("verbose", "", nil, options.IniBool)

	v, err := s.Ini("verbose")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestSettings_PathsResolveAgainstFileDir(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"fixture_dirs": "fixtures\n/abs/path"}`)
	s := NewSettings()
	require.NoError(t, s.Load(path))
	s.AddIni("fixture_dirs", "", nil, options.IniPaths)

	v, err := s.Ini("fixture_dirs")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(filepath.Dir(path), "fixtures"),
		"/abs/path",
	}, v)
}

func TestSettings_MissingKeyErrors(t *testing.T) {
	s := loadedSettings(t, "settings.json", `{"present": "x"}`)
	s.AddIni("absent", "", nil, options.IniString)

	_, err := s.Ini("absent")
	assert.ErrorContains(t, err, "not found")
}

func TestSettings_UnregisteredKeyErrors(t *testing.T) {
	s := loadedSettings(t, "settings.json", `{"present": "x"}`)

	_, err := s.Ini("present")
	assert.ErrorContains(t, err, "not registered")
}

func TestSettings_NoFileLoadedErrors(t *testing.T) {
	s := NewSettings()
	s.AddIni("key", "", nil, options.IniString)

	_, err := s.Ini("key")
	assert.ErrorContains(t, err, "no settings file loaded")
}

func TestSettings_InvalidJSON(t *testing.T) {
	s := NewSettings()
	err := s.Load(writeSettings(t, "settings.json", "{not json"))
	assert.ErrorContains(t, err, "invalid JSON")
}

func TestSettings_UnsupportedExtension(t *testing.T) {
	s := NewSettings()
	err := s.Load(writeSettings(t, "settings.toml", "a = 1"))
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestSettings_NoIniKindReturnsRawValue(t *testing.T) {
	s := loadedSettings(t, "settings.json", `{"retries": "3"}`)
	s.AddIni("retries", "", nil, options.IniNone)

	v, err := s.Ini("retries")
	require.NoError(t, err)
	assert.Equal(t, "3", v, "undeclared ini kind hands back the raw value for later casting")
}
