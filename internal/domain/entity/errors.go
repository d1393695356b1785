package entity

import (
	"errors"
	"fmt"
)

// Config document errors.
var (
	// ErrIO covers files that are missing, unreadable or unwritable.
	ErrIO = errors.New("config i/o error")
	// ErrConfigNotFound is an ErrIO for a config.ini that does not exist.
	ErrConfigNotFound = fmt.Errorf("%w: config not found", ErrIO)
	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("config parse error")

	ErrInvalidKey   = errors.New("invalid config key")
	ErrInvalidValue = errors.New("invalid config value")
	ErrNotBoolean   = errors.New("key has no boolean representation")
)

// ErrAvdNotFound is returned when no AVD matches a requested name.
var ErrAvdNotFound = errors.New("avd not found")

// ParseError reports the first malformed line of a config file.
type ParseError struct {
	Path   string
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
