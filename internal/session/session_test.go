package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFirstRunUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := Load(path, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", s.UserID())
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestLoadRequiresIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	_, err := Load(path, "")
	assert.Error(t, err, "no silent fallback to a privileged id")
}

func TestPersistOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := Load(path, "1")
	require.NoError(t, err)

	require.NoError(t, s.SetTheme(ThemeDark))
	require.NoError(t, s.SetUserID("7"))

	// a fresh load sees the persisted values, defaults ignored
	reloaded, err := Load(path, "1")
	require.NoError(t, err)
	assert.Equal(t, "7", reloaded.UserID())
	assert.Equal(t, ThemeDark, reloaded.Theme())
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := Load(path, "1")
	require.NoError(t, err)
	assert.Error(t, s.SetTheme("solarized"))
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := Load(path, "1")
	assert.Error(t, err)
}
