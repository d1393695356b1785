package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/cli/styles"
	"github.com/bnema/avdedit/internal/domain/entity"
)

var addCmd = &cobra.Command{
	Use:   "add <avd> <key=value>",
	Short: "Add a key=value line and save",
	Long: `Add a new entry to config.ini, or replace the value of an existing key.

The entry must contain exactly one '=' with text on both sides. Anything
else is ignored and the file is left untouched.

Examples:
  avdedit add Pixel_6 hw.lcd.density=420`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	r := styles.NewEntryRenderer(a.Theme)

	if session.Missing() {
		return fmt.Errorf("%s has no %s", desc.Name, entity.ConfigFileName)
	}
	if !session.AddEntry(args[1]) {
		fmt.Fprint(w, r.RenderNotice(fmt.Sprintf("ignored %q: expected key=value", args[1])))
		return nil
	}
	if err := session.Save(a.Ctx()); err != nil {
		return err
	}

	fmt.Fprint(w, r.RenderSuccess(args[1]))
	return nil
}
