package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "> "
	return ti
}

// NewEntryInput creates the input used to add a key=value line.
func NewEntryInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "setting.name=value")
	ti.Prompt = "+ "
	ti.CharLimit = 1024
	return ti
}

// NewValueInput creates the input used to edit a free-text value.
func NewValueInput(theme *Theme, key, value string) textinput.Model {
	ti := NewStyledInput(theme, "value")
	ti.Prompt = key + " = "
	ti.CharLimit = 1024
	ti.SetValue(value)
	ti.CursorEnd()
	return ti
}
