package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/avdedit/internal/application/usecase"
	"github.com/bnema/avdedit/internal/domain/entity"
)

// EntryRenderer renders AVDs and config entries for non-interactive commands.
type EntryRenderer struct {
	theme *Theme
}

// NewEntryRenderer creates a new entry renderer with the given theme.
func NewEntryRenderer(theme *Theme) *EntryRenderer {
	return &EntryRenderer{theme: theme}
}

// RenderAvdList renders the discovered AVDs under root.
func (r *EntryRenderer) RenderAvdList(root string, avds []entity.AvdDescriptor) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s\n\n", iconStyle.Render(IconFolder), r.theme.Subtle.Render(root))

	if len(avds) == 0 {
		fmt.Fprintf(&sb, "  %s\n", r.theme.Subtle.Render("No AVDs found"))
		return sb.String()
	}

	for _, avd := range avds {
		status := r.theme.SuccessStyle.Render(IconCheck)
		if !avd.HasConfig {
			status = r.theme.WarningStyle.Render(IconWarning + " no config.ini")
		}
		fmt.Fprintf(&sb, "  %s %s  %s\n",
			iconStyle.Render(IconMobile),
			r.theme.Highlight.Render(avd.Name),
			status,
		)
	}
	return sb.String()
}

// RenderEntries renders the rows of one config.ini. Boolean keys show a
// checkbox in place of their raw value.
func (r *EntryRenderer) RenderEntries(avd entity.AvdDescriptor, rows []usecase.EntryRow) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s %s\n\n",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render(avd.Name),
		r.theme.Subtle.Render(avd.ConfigPath),
	)

	if len(rows) == 0 {
		fmt.Fprintf(&sb, "  %s\n", r.theme.Subtle.Render("No entries"))
		return sb.String()
	}

	for _, row := range rows {
		fmt.Fprintf(&sb, "  %s\n", r.RenderRow(row))
	}
	return sb.String()
}

// RenderRow renders a single entry without selection styling.
func (r *EntryRenderer) RenderRow(row usecase.EntryRow) string {
	if row.Kind.IsBoolean() {
		box := r.theme.Subtle.Render(Checkbox(row.Checked))
		if row.Checked {
			box = r.theme.Highlight.Render(Checkbox(true))
		}
		return fmt.Sprintf("%s %s", box, r.theme.EntryKey.Render(row.Key))
	}
	return fmt.Sprintf("%s %s",
		r.theme.EntryKey.Render(row.Key+" ="),
		r.theme.EntryValue.Render(row.Value),
	)
}

// RenderSuccess renders a one-line success notice.
func (r *EntryRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s\n", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderNotice renders a muted informational line.
func (r *EntryRenderer) RenderNotice(msg string) string {
	return fmt.Sprintf("  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
		r.theme.Subtle.Render(msg),
	)
}

// RenderMissingConfig renders the empty state of an AVD without config.ini.
func (r *EntryRenderer) RenderMissingConfig(avd entity.AvdDescriptor) string {
	return fmt.Sprintf("\n  %s %s %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Title.Render(avd.Name),
		r.theme.Subtle.Render("has no "+entity.ConfigFileName),
	)
}
