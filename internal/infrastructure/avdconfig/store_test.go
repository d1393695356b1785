package avdconfig_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/infrastructure/avdconfig"
	"github.com/bnema/avdedit/internal/logging"
)

const configPath = "/home/dev/.android/avd/Pixel_6.avd/config.ini"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func memFsWith(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(content), 0o644))
	return fs
}

func TestFileStore_Load_Success(t *testing.T) {
	store := avdconfig.NewFileStore(memFsWith(t, "hw.gps=yes\nPlayStore.enabled=true\nunknown.key=foo"))

	doc, err := store.Load(testContext(), configPath)
	require.NoError(t, err)

	assert.Equal(t, configPath, doc.Path())
	assert.Equal(t, []string{"hw.gps", "PlayStore.enabled", "unknown.key"}, doc.Keys())
}

func TestFileStore_Load_Missing(t *testing.T) {
	store := avdconfig.NewFileStore(afero.NewMemMapFs())

	doc, err := store.Load(testContext(), configPath)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, entity.ErrConfigNotFound)
	assert.ErrorIs(t, err, entity.ErrIO)
}

func TestFileStore_Load_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(configPath, 0o755))

	_, err := avdconfig.NewFileStore(fs).Load(testContext(), configPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrIO)
	assert.NotErrorIs(t, err, entity.ErrConfigNotFound)
}

func TestFileStore_Load_ParseError(t *testing.T) {
	store := avdconfig.NewFileStore(memFsWith(t, "a=1\nno separator here"))

	_, err := store.Load(testContext(), configPath)
	require.Error(t, err)

	var perr *entity.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.NotErrorIs(t, err, entity.ErrIO)
}

func TestFileStore_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := avdconfig.NewFileStore(memFsWith(t, "a=1")).Load(ctx, configPath)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_Save_SortsAndReplaces(t *testing.T) {
	fs := memFsWith(t, "hw.gps=yes\nPlayStore.enabled=true\nunknown.key=foo")
	store := avdconfig.NewFileStore(fs)
	ctx := testContext()

	doc, err := store.Load(ctx, configPath)
	require.NoError(t, err)
	require.NoError(t, doc.SetBool("hw.gps", entity.YesNoBoolean, false))

	require.NoError(t, store.Save(ctx, doc, configPath))

	data, err := afero.ReadFile(fs, configPath)
	require.NoError(t, err)
	assert.Equal(t, "PlayStore.enabled=true\nhw.gps=no\nunknown.key=foo", string(data))

	reloaded, err := store.Load(ctx, configPath)
	require.NoError(t, err)
	assert.True(t, doc.Equal(reloaded))
}

func TestFileStore_Save_LeavesNoTempFiles(t *testing.T) {
	fs := memFsWith(t, "a=1")
	store := avdconfig.NewFileStore(fs)

	doc := entity.NewConfigDocument(configPath)
	require.NoError(t, doc.Set("b", "2"))
	require.NoError(t, store.Save(testContext(), doc, configPath))

	entries, err := afero.ReadDir(fs, filepath.Dir(configPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ConfigFileName, entries[0].Name())
}

func TestFileStore_Save_PreservesMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, afero.WriteFile(fs, configPath, []byte("a=1"), 0o600))

	doc := entity.NewConfigDocument(configPath)
	require.NoError(t, doc.Set("a", "2"))
	require.NoError(t, avdconfig.NewFileStore(fs).Save(testContext(), doc, configPath))

	info, err := fs.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_Save_WriteFailureKeepsOriginal(t *testing.T) {
	base := memFsWith(t, "a=1")
	store := avdconfig.NewFileStore(afero.NewReadOnlyFs(base))

	doc := entity.NewConfigDocument(configPath)
	require.NoError(t, doc.Set("a", "2"))

	err := store.Save(testContext(), doc, configPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrIO)

	data, err := afero.ReadFile(base, configPath)
	require.NoError(t, err)
	assert.Equal(t, "a=1", string(data))
}

func TestFileStore_Save_TargetIsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(configPath, 0o755))

	err := avdconfig.NewFileStore(fs).Save(testContext(), entity.NewConfigDocument(configPath), configPath)
	assert.ErrorIs(t, err, entity.ErrIO)
}

func TestFileStore_Save_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, entity.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("z=1\na=2"), 0o644))

	store := avdconfig.NewOSFileStore()
	ctx := testContext()

	doc, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, doc.Set("m", "3"))
	require.NoError(t, store.Save(ctx, doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a=2\nm=3\nz=1", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_Save_OSMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", entity.ConfigFileName)

	err := avdconfig.NewOSFileStore().Save(testContext(), entity.NewConfigDocument(path), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrIO)
}

func TestFileStore_Save_OSReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, entity.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("a=1"), 0o644))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	doc := entity.NewConfigDocument(path)
	require.NoError(t, doc.Set("a", "2"))

	err := avdconfig.NewOSFileStore().Save(testContext(), doc, path)
	require.ErrorIs(t, err, entity.ErrIO)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a=1", string(data))
}
