package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/cli/styles"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <avd>",
	Short: "Show the config.ini of an AVD",
	Long: `Show every entry of an AVD's config.ini in file order.

Known boolean keys render as checkboxes. With --raw the entries are
printed as key=value lines instead.

Examples:
  avdedit show Pixel_6
  avdedit show Pixel_6 --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print key=value lines")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, desc, err := a.OpenAvd(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	w := cmd.OutOrStdout()
	renderer := styles.NewEntryRenderer(a.Theme)

	if session.Missing() {
		if !showRaw {
			fmt.Fprint(w, renderer.RenderMissingConfig(desc))
		}
		return nil
	}

	rows := session.Rows()
	if showRaw {
		for _, row := range rows {
			fmt.Fprintf(w, "%s=%s\n", row.Key, row.Value)
		}
		return nil
	}

	fmt.Fprint(w, renderer.RenderEntries(desc, rows))
	return nil
}
