package port

import (
	"context"

	"github.com/bnema/avdedit/internal/domain/entity"
)

// ConfigStore loads and saves AVD config.ini files.
type ConfigStore interface {
	// Load reads and parses the file at path.
	// Returns entity.ErrConfigNotFound when the file does not exist,
	// an entity.ErrIO wrap for other read failures and *entity.ParseError
	// for malformed content.
	Load(ctx context.Context, path string) (*entity.ConfigDocument, error)

	// Save replaces the file at path with the serialized document.
	// The write is all-or-nothing: on failure the previous file is left intact.
	Save(ctx context.Context, doc *entity.ConfigDocument, path string) error
}

// ConfigWatcher reports external modifications of a config file.
type ConfigWatcher interface {
	// Watch emits a value each time path changes on disk.
	// The channel is closed once ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
