package entity

import "path/filepath"

// AvdDescriptor identifies an Android Virtual Device found under the AVD root.
type AvdDescriptor struct {
	Name       string // Directory name with its extension stripped (e.g., "Pixel_6")
	Dir        string // Absolute directory path (e.g., "~/.android/avd/Pixel_6.avd")
	ConfigPath string // Dir joined with config.ini
	HasConfig  bool   // ConfigPath was a regular file at discovery time
}

// Matches reports whether name refers to this AVD by label or directory name.
func (a AvdDescriptor) Matches(name string) bool {
	if name == "" {
		return false
	}
	return a.Name == name || filepath.Base(a.Dir) == name
}
