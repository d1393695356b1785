package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 5 // megabytes
	defaultMaxBackups = 3 // files

	// File permissions
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultColorPalette returns the built-in dark palette.
func DefaultColorPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	logDir, _ := GetLogDir()

	return &Config{
		AvdRoot: "",
		Editor: EditorConfig{
			WatchExternalChanges: true,
			ConfirmDiscard:       true,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        logDir,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultColorPalette(),
		},
	}
}
