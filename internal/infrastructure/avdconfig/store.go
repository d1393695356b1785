// Package avdconfig reads, writes and watches AVD config.ini files.
package avdconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/logging"
)

const defaultFilePerm = 0o644

var _ port.ConfigStore = (*FileStore)(nil)

// FileStore implements port.ConfigStore on an afero filesystem.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a store backed by fs.
func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{fs: fs}
}

// NewOSFileStore creates a store backed by the real filesystem.
func NewOSFileStore() *FileStore {
	return NewFileStore(afero.NewOsFs())
}

// Load reads and parses the config file at path.
func (s *FileStore) Load(ctx context.Context, path string) (*entity.ConfigDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: stat %s: %w", entity.ErrIO, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", entity.ErrIO, path)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entity.ErrIO, path, err)
	}

	doc, err := entity.ParseConfigDocument(path, data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config parse failed")
		return nil, err
	}

	log.Debug().Str("path", path).Int("entries", doc.Len()).Msg("config loaded")
	return doc, nil
}

// Save atomically replaces the file at path with the sorted serialization
// of doc. The content goes to a temp file in the same directory which is
// synced and renamed over the target, so readers never see a partial file.
func (s *FileStore) Save(ctx context.Context, doc *entity.ConfigDocument, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: nil document", entity.ErrIO)
	}
	log := logging.FromContext(ctx)

	perm := os.FileMode(defaultFilePerm)
	if info, err := s.fs.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", entity.ErrIO, path)
		}
		perm = info.Mode().Perm()
	}

	if err := s.writeAtomic(path, doc.Marshal(), perm); err != nil {
		log.Error().Err(err).Str("path", path).Msg("config save failed")
		return fmt.Errorf("%w: save %s: %w", entity.ErrIO, path, err)
	}

	log.Debug().Str("path", path).Int("entries", doc.Len()).Msg("config saved")
	return nil
}

func (s *FileStore) writeAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = s.fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = s.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
