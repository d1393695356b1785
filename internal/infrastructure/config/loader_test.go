package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AVDEDIT_AVD_ROOT", "ANDROID_AVD_HOME", "AVDEDIT_LOG_LEVEL", "AVDEDIT_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "avdedit")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(dir, configFileName)
	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.ConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Editor.WatchExternalChanges)
	assert.Equal(t, DefaultColorPalette(), cfg.Appearance.Palette)
}

func TestManager_Load_ReadsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `avd_root = "/opt/avds"

[editor]
  watch_external_changes = false

[logging]
  level = "DEBUG"
  format = "json"

[appearance.palette]
  accent = "#ff00ff"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/opt/avds", cfg.AvdRoot)
	assert.False(t, cfg.Editor.WatchExternalChanges)
	assert.True(t, cfg.Editor.ConfirmDiscard)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "#ff00ff", cfg.Appearance.Palette.Accent)
	assert.Equal(t, DefaultColorPalette().Background, cfg.Appearance.Palette.Background)
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANDROID_AVD_HOME", "/from/android")
	t.Setenv("AVDEDIT_LOG_LEVEL", "warn")

	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/from/android", cfg.AvdRoot)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_Load_OwnEnvBeatsAndroidHome(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANDROID_AVD_HOME", "/from/android")
	t.Setenv("AVDEDIT_AVD_ROOT", "/from/avdedit")

	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "/from/avdedit", mgr.Get().AvdRoot)
}

func TestManager_Load_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `[logging]
  level = "loud"

[appearance.palette]
  text = "white"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "appearance.palette.text")
}

func TestManager_Load_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("avd_root = [unterminated"), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.FileExists(t, filepath.Join(xdg, "avdedit", configFileName))

	require.NoError(t, os.WriteFile(filepath.Join(xdg, "avdedit", configFileName), []byte("avd_root = [unterminated"), 0o644))

	cfg, err = Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestManager_Get_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Logging.Level, mgr.Get().Logging.Level)
}

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	cfg := DefaultConfig()
	cfg.AvdRoot = "/somewhere"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# avdedit settings"))

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestWriteDefault_RespectsForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)

	require.NoError(t, WriteDefault(path, false))
	assert.Error(t, WriteDefault(path, false))
	assert.NoError(t, WriteDefault(path, true))
}

func TestNormalizeConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.AvdRoot = "~/avds"
	cfg.Logging.Level = ""
	normalizeConfig(cfg)

	assert.Equal(t, filepath.Join(home, "avds"), cfg.AvdRoot)
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
}

func TestGetXDGDirs_RespectsEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/avdedit", dirs.ConfigHome)
	assert.Equal(t, "/xdg/state/avdedit", dirs.StateHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/state/avdedit/logs", logDir)
}

func TestEncode(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)

	data, err := Encode(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[editor]")
	assert.False(t, strings.HasPrefix(string(data), "#"))
}

func TestGetManDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	dir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/data/man/man1", dir)

	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir, err = GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "man", "man1"), dir)
}
