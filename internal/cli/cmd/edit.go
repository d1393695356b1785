package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/cli/model"
	"github.com/bnema/avdedit/internal/logging"
)

var editCmd = &cobra.Command{
	Use:   "edit [avd]",
	Short: "Open the interactive editor",
	Long: `Open the interactive config.ini editor.

The first AVD is selected unless a name is given. Boolean settings toggle
with space, other values open an inline editor with enter, and 'a' adds a
new key=value line. Changes are written only when you save.

Examples:
  avdedit edit               # Edit the first AVD
  avdedit edit Pixel_6       # Edit a specific AVD`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var initial string
	if len(args) > 0 {
		initial = args[0]
	}

	ctx := logging.WithComponent(a.Ctx(), "editor")
	cfg := model.EditorModelConfig{
		ListAvdsUC:     a.ListAvdsUC,
		Session:        a.NewSession(),
		AvdRoot:        a.AvdRoot(),
		InitialAvd:     initial,
		ConfirmDiscard: a.Config.Editor.ConfirmDiscard,
	}
	if a.Config.Editor.WatchExternalChanges {
		cfg.Watcher = a.Watcher
	}

	m := model.NewEditorModel(ctx, a.Theme, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
