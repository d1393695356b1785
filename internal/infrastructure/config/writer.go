package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = `# avdedit settings
# Environment overrides: AVDEDIT_AVD_ROOT (or ANDROID_AVD_HOME), AVDEDIT_LOG_LEVEL, AVDEDIT_LOG_FORMAT

`

// Encode renders cfg as TOML. Struct fields are written in definition
// order (go-toml v2 behavior).
func Encode(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfigOrdered writes the configuration to disk with a header.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return WriteConfigOrdered(DefaultConfig(), path)
}
