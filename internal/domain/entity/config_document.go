package entity

import (
	"bytes"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// ConfigFileName is the name of the per-AVD configuration file.
const ConfigFileName = "config.ini"

// ConfigEntry is a single key=value line of a config.ini file.
type ConfigEntry struct {
	Key   string
	Value string
}

// ConfigDocument is the ordered key/value content of one config.ini file.
// Iteration order is the original line order with new keys appended.
// A ConfigDocument is not safe for concurrent use.
type ConfigDocument struct {
	path   string
	keys   []string
	values map[string]string
}

// NewConfigDocument creates an empty document bound to path.
func NewConfigDocument(path string) *ConfigDocument {
	return &ConfigDocument{
		path:   path,
		values: make(map[string]string),
	}
}

// ParseConfigDocument parses config.ini content.
// Blank lines are skipped and each remaining line is split on its first '='.
// A key that appears twice keeps its first position and its last value.
func ParseConfigDocument(path string, data []byte) (*ConfigDocument, error) {
	doc := NewConfigDocument(path)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		switch {
		case !found:
			return nil, &ParseError{Path: path, Line: i + 1, Text: line, Reason: "missing '='"}
		case key == "":
			return nil, &ParseError{Path: path, Line: i + 1, Text: line, Reason: "empty key"}
		}
		doc.put(key, value)
	}

	return doc, nil
}

// ParseEntryInput validates free-form "key=value" text typed by a user.
// It accepts exactly one '=' with non-empty text on both sides.
func ParseEntryInput(text string) (ConfigEntry, bool) {
	if strings.Count(text, "=") != 1 || strings.ContainsAny(text, "\r\n") {
		return ConfigEntry{}, false
	}
	key, value, _ := strings.Cut(text, "=")
	if key == "" || value == "" {
		return ConfigEntry{}, false
	}
	return ConfigEntry{Key: key, Value: value}, true
}

// Path returns the file the document was loaded from.
func (d *ConfigDocument) Path() string {
	return d.path
}

// Len returns the number of entries.
func (d *ConfigDocument) Len() int {
	return len(d.keys)
}

// Get returns the raw value stored for key.
func (d *ConfigDocument) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set inserts or overwrites key. Existing keys keep their position.
func (d *ConfigDocument) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value for %q contains a line break", ErrInvalidValue, key)
	}
	d.put(key, value)
	return nil
}

// ValidateKey checks that key can be written as the left side of a line.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	case strings.Contains(key, "="):
		return fmt.Errorf("%w: %q contains '='", ErrInvalidKey, key)
	case strings.ContainsAny(key, "\r\n"):
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidKey, key)
	}
	return nil
}

func (d *ConfigDocument) put(key, value string) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Keys returns the keys in iteration order.
func (d *ConfigDocument) Keys() []string {
	return slices.Clone(d.keys)
}

// Entries yields entries in iteration order. Each range over the returned
// sequence starts from the document state at that moment.
func (d *ConfigDocument) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		keys := d.keys[:len(d.keys):len(d.keys)]
		for _, k := range keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Bool reads key through the boolean codec of class. Absent keys read as false.
func (d *ConfigDocument) Bool(key string, class Classification) bool {
	return class.Decode(d.values[key])
}

// SetBool stores the canonical encoding of v for class.
func (d *ConfigDocument) SetBool(key string, class Classification, v bool) error {
	raw, err := class.Encode(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return d.Set(key, raw)
}

// Marshal renders the document as key=value lines sorted bytewise by key,
// joined by '\n' with no trailing newline.
func (d *ConfigDocument) Marshal() []byte {
	sorted := slices.Sorted(maps.Keys(d.values))

	var buf bytes.Buffer
	for i, k := range sorted {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(d.values[k])
	}
	return buf.Bytes()
}

// Clone returns a deep copy.
func (d *ConfigDocument) Clone() *ConfigDocument {
	return &ConfigDocument{
		path:   d.path,
		keys:   slices.Clone(d.keys),
		values: maps.Clone(d.values),
	}
}

// Equal reports whether both documents hold the same mapping, ignoring order.
func (d *ConfigDocument) Equal(other *ConfigDocument) bool {
	if d == nil || other == nil {
		return d == other
	}
	return maps.Equal(d.values, other.values)
}
