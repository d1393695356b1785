package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/application/usecase"
	"github.com/bnema/avdedit/internal/cli/styles"
)

var listPlain bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List AVDs under the AVD root",
	Long: `List the Android Virtual Devices found under the AVD root.

Each immediate subdirectory is one AVD. Devices without a config.ini are
listed with a warning and open read-only in the editor.

Examples:
  avdedit list                        # Styled list
  avdedit list --plain                # One name per line
  avdedit list --avd-root /tmp/avd    # Another root`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "print one AVD name per line")
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out, err := a.ListAvdsUC.Execute(a.Ctx(), usecase.ListAvdsInput{Root: a.AvdRoot()})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if listPlain {
		for _, avd := range out.Avds {
			fmt.Fprintln(w, avd.Name)
		}
		return nil
	}

	fmt.Fprint(w, styles.NewEntryRenderer(a.Theme).RenderAvdList(out.Root, out.Avds))
	return nil
}
