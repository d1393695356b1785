package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	// About
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher

	// Status
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	// Files
	IconFolder = "" // folder
	IconConfig = "" // config
	IconMobile = "" // mobile
	IconPencil = "" // pencil
	IconSave   = "" // floppy

	// Checkboxes
	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	// UI
	IconCursor = "" // chevron-right
)

// Checkbox returns the checkbox glyph for a boolean row.
func Checkbox(checked bool) string {
	if checked {
		return IconCheckboxChecked
	}
	return IconCheckboxEmpty
}
