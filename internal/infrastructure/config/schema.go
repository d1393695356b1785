// Package config manages avdedit's own settings file.
package config

// Config holds avdedit settings.
type Config struct {
	// AvdRoot is the directory that holds the *.avd directories. Empty means ~/.android/avd.
	AvdRoot    string           `mapstructure:"avd_root" yaml:"avd_root" toml:"avd_root"`
	Editor     EditorConfig     `mapstructure:"editor" yaml:"editor" toml:"editor"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// EditorConfig holds interactive editor preferences.
type EditorConfig struct {
	// WatchExternalChanges reloads config.ini when another program modifies it.
	WatchExternalChanges bool `mapstructure:"watch_external_changes" yaml:"watch_external_changes" toml:"watch_external_changes"`
	// ConfirmDiscard asks before quitting or switching AVDs with unsaved edits.
	ConfirmDiscard bool `mapstructure:"confirm_discard" yaml:"confirm_discard" toml:"confirm_discard"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
}

// AppearanceConfig holds terminal colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette"`
}

// ColorPalette holds hex colors for the terminal UI.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}
