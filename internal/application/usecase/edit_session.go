package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/logging"
)

// ErrNoDocument is returned by edits when no config.ini is open.
var ErrNoDocument = errors.New("no config document open")

// EntryRow is one rendered line of the editor.
type EntryRow struct {
	Key     string
	Value   string
	Kind    entity.Classification
	Checked bool // boolean view; always false for FreeText
}

// ReloadResult describes what Reload did with the on-disk content.
type ReloadResult int

const (
	// ReloadUnchanged means the file matches the open document.
	ReloadUnchanged ReloadResult = iota
	// ReloadReplaced means the open document was replaced by the file.
	ReloadReplaced
	// ReloadConflict means the file changed but unsaved edits were kept.
	ReloadConflict
)

func (r ReloadResult) String() string {
	switch r {
	case ReloadReplaced:
		return "replaced"
	case ReloadConflict:
		return "conflict"
	default:
		return "unchanged"
	}
}

// EditSession owns the config document of the selected AVD.
// Opening another AVD replaces the owned document. All methods are safe
// for concurrent use; a file watcher may call Reload while the UI edits.
type EditSession struct {
	mu      sync.Mutex
	store   port.ConfigStore
	avd     *entity.AvdDescriptor
	doc     *entity.ConfigDocument
	disk    *entity.ConfigDocument // last content read from or written to config.ini
	missing bool
	dirty   bool
}

// NewEditSession creates an empty session.
func NewEditSession(store port.ConfigStore) *EditSession {
	return &EditSession{store: store}
}

// Open loads the config.ini of avd and makes it the session document.
// A missing file opens an empty, read-only state without error.
// On any other failure the previous state is retained.
func (s *EditSession) Open(ctx context.Context, avd entity.AvdDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(ctx)

	doc, err := s.store.Load(ctx, avd.ConfigPath)
	switch {
	case errors.Is(err, entity.ErrConfigNotFound):
		log.Info().Str("avd", avd.Name).Str("path", avd.ConfigPath).Msg("avd has no config.ini")
		s.replace(&avd, nil, true)
		return nil
	case err != nil:
		log.Error().Err(err).Str("avd", avd.Name).Msg("failed to open config")
		return err
	}

	s.replace(&avd, doc, false)
	log.Debug().Str("avd", avd.Name).Int("entries", doc.Len()).Msg("config opened")
	return nil
}

func (s *EditSession) replace(avd *entity.AvdDescriptor, doc *entity.ConfigDocument, missing bool) {
	s.avd = avd
	s.doc = doc
	s.disk = nil
	if doc != nil {
		s.disk = doc.Clone()
	}
	s.missing = missing
	s.dirty = false
}

// Close releases the owned document.
func (s *EditSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(nil, nil, false)
}

// Avd returns the selected AVD.
func (s *EditSession) Avd() (entity.AvdDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.avd == nil {
		return entity.AvdDescriptor{}, false
	}
	return *s.avd, true
}

// Editable reports whether a document is open.
func (s *EditSession) Editable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc != nil
}

// Missing reports whether the selected AVD has no config.ini.
func (s *EditSession) Missing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missing
}

// Dirty reports unsaved edits.
func (s *EditSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Rows returns the current entries in iteration order.
func (s *EditSession) Rows() []EntryRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return nil
	}
	rows := make([]EntryRow, 0, s.doc.Len())
	for k, v := range s.doc.Entries() {
		kind := entity.Classify(k)
		rows = append(rows, EntryRow{
			Key:     k,
			Value:   v,
			Kind:    kind,
			Checked: kind.Decode(v),
		})
	}
	return rows
}

// Get returns the raw value of key.
func (s *EditSession) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return "", false
	}
	return s.doc.Get(key)
}

// SetValue stores a raw value.
func (s *EditSession) SetValue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNoDocument
	}
	if err := s.doc.Set(key, value); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// SetBool stores v using the encoding the key is classified with.
func (s *EditSession) SetBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNoDocument
	}
	if err := s.doc.SetBool(key, entity.Classify(key), v); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Toggle flips a boolean key and returns its new view.
func (s *EditSession) Toggle(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return false, ErrNoDocument
	}
	class := entity.Classify(key)
	next := !s.doc.Bool(key, class)
	if err := s.doc.SetBool(key, class, next); err != nil {
		return false, err
	}
	s.dirty = true
	return next, nil
}

// AddEntry stores user-typed "key=value" text. Input without exactly one
// '=' and non-empty sides is dropped and reported as false.
func (s *EditSession) AddEntry(text string) bool {
	entry, ok := entity.ParseEntryInput(text)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return false
	}
	if err := s.doc.Set(entry.Key, entry.Value); err != nil {
		return false
	}
	s.dirty = true
	return true
}

// Save writes the document back to the AVD's config.ini.
func (s *EditSession) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil || s.avd == nil {
		return ErrNoDocument
	}
	log := logging.FromContext(ctx)

	if err := s.store.Save(ctx, s.doc, s.avd.ConfigPath); err != nil {
		log.Error().Err(err).Str("avd", s.avd.Name).Msg("failed to save config")
		return err
	}
	s.dirty = false
	s.disk = s.doc.Clone()
	log.Info().Str("avd", s.avd.Name).Int("entries", s.doc.Len()).Msg("config saved")
	return nil
}

// Reload reconciles the session with the file on disk after an external
// change. Unsaved edits are never overwritten: a dirty session reports
// ReloadConflict and keeps its document.
func (s *EditSession) Reload(ctx context.Context) (ReloadResult, error) {
	return s.reload(ctx, false)
}

// Revert discards unsaved edits and reloads the file.
func (s *EditSession) Revert(ctx context.Context) error {
	_, err := s.reload(ctx, true)
	return err
}

func (s *EditSession) reload(ctx context.Context, force bool) (ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.avd == nil {
		return ReloadUnchanged, ErrNoDocument
	}
	log := logging.FromContext(ctx)

	doc, err := s.store.Load(ctx, s.avd.ConfigPath)
	notFound := errors.Is(err, entity.ErrConfigNotFound)
	if err != nil && !notFound {
		log.Warn().Err(err).Str("avd", s.avd.Name).Msg("reload failed, keeping current document")
		return ReloadUnchanged, fmt.Errorf("reload %s: %w", s.avd.Name, err)
	}

	if !notFound && s.knownContent(doc) {
		if force {
			s.replace(s.avd, doc, false)
		}
		return ReloadUnchanged, nil
	}
	if notFound && s.missing {
		return ReloadUnchanged, nil
	}

	if s.dirty && !force {
		log.Warn().Str("avd", s.avd.Name).Msg("config changed on disk with unsaved edits")
		return ReloadConflict, nil
	}

	s.replace(s.avd, doc, notFound)
	log.Info().Str("avd", s.avd.Name).Msg("config reloaded from disk")
	return ReloadReplaced, nil
}

// knownContent reports whether doc matches the last content read or written,
// which covers the watcher event of our own save, or the open document.
func (s *EditSession) knownContent(doc *entity.ConfigDocument) bool {
	if s.disk.Equal(doc) {
		return true
	}
	if s.doc != nil && s.doc.Equal(doc) {
		s.disk = doc.Clone()
		return true
	}
	return false
}
