// Package avd discovers Android Virtual Devices on the local filesystem.
package avd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/logging"
)

// DefaultRelativeRoot is where the Android emulator keeps AVDs under $HOME.
var DefaultRelativeRoot = filepath.Join(".android", "avd")

var _ port.AvdRegistry = (*Registry)(nil)

// Registry implements port.AvdRegistry.
type Registry struct {
	fs      afero.Fs
	homeDir func() (string, error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithHomeDir overrides home directory resolution.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Registry) {
		r.homeDir = fn
	}
}

// NewRegistry creates a registry over fs.
func NewRegistry(fs afero.Fs, opts ...Option) *Registry {
	r := &Registry{
		fs:      fs,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewOSRegistry creates a registry over the real filesystem.
func NewOSRegistry(opts ...Option) *Registry {
	return NewRegistry(afero.NewOsFs(), opts...)
}

// ListAvds returns one descriptor per immediate subdirectory of root,
// sorted by directory name. Directories without a config.ini are kept.
func (r *Registry) ListAvds(ctx context.Context, root string) ([]entity.AvdDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	// afero.ReadDir sorts by name.
	infos, err := afero.ReadDir(r.fs, root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("root", root).Msg("avd root does not exist")
			return []entity.AvdDescriptor{}, nil
		}
		return nil, fmt.Errorf("%w: list %s: %w", entity.ErrIO, root, err)
	}

	avds := make([]entity.AvdDescriptor, 0, len(infos))
	for _, info := range infos {
		dir := filepath.Join(root, info.Name())
		if !r.isDir(dir, info) {
			continue
		}
		cfg := filepath.Join(dir, entity.ConfigFileName)

		avds = append(avds, entity.AvdDescriptor{
			Name:       displayName(info.Name()),
			Dir:        dir,
			ConfigPath: cfg,
			HasConfig:  r.isRegularFile(cfg),
		})
	}

	log.Debug().Str("root", root).Int("count", len(avds)).Msg("avds listed")
	return avds, nil
}

// DefaultAvdRoot returns $HOME/.android/avd.
func (r *Registry) DefaultAvdRoot() (string, error) {
	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("resolve home directory: empty path")
	}
	return filepath.Join(home, DefaultRelativeRoot), nil
}

// isDir reports whether entry is a directory, following symlinks since
// ReadDir reports them unresolved.
func (r *Registry) isDir(path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (r *Registry) isRegularFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// displayName strips the last extension, so "Pixel_6.avd" becomes "Pixel_6".
// Names that are only an extension (".avd") are kept whole.
func displayName(dirName string) string {
	ext := filepath.Ext(dirName)
	if ext == "" || ext == dirName {
		return dirName
	}
	return strings.TrimSuffix(dirName, ext)
}
