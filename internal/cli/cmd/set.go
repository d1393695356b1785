package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/cli/styles"
	"github.com/bnema/avdedit/internal/domain/entity"
)

var setCmd = &cobra.Command{
	Use:   "set <avd> <key> <value>",
	Short: "Set a raw value and save",
	Long: `Set a key to a raw value and save config.ini.

The value is stored as given, even for boolean keys. Use enable and
disable to write booleans in the encoding the key expects.

Examples:
  avdedit set Pixel_6 hw.ramSize 4096
  avdedit set Pixel_6 avd.ini.displayname "Pixel 6 API 34"`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var enableCmd = &cobra.Command{
	Use:   "enable <avd> <key>...",
	Short: "Turn boolean settings on",
	Long: `Turn one or more boolean settings on and save config.ini.

Keys are written as true or yes depending on the key. Keys that are not
known booleans are rejected without changing the file.

Examples:
  avdedit enable Pixel_6 hw.gps hw.keyboard
  avdedit enable Pixel_6 PlayStore.enabled`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetBool(cmd, args, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <avd> <key>...",
	Short: "Turn boolean settings off",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetBool(cmd, args, false)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, desc, err := a.OpenAvd(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	if session.Missing() {
		return fmt.Errorf("%s has no %s", desc.Name, entity.ConfigFileName)
	}
	if err := session.SetValue(args[1], args[2]); err != nil {
		return err
	}
	if err := session.Save(a.Ctx()); err != nil {
		return err
	}

	r := styles.NewEntryRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), r.RenderSuccess(fmt.Sprintf("%s=%s", args[1], args[2])))
	return nil
}

func runSetBool(cmd *cobra.Command, args []string, on bool) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	keys := args[1:]
	for _, k := range keys {
		if !entity.Classify(k).IsBoolean() {
			return fmt.Errorf("%w: %s", entity.ErrNotBoolean, k)
		}
	}

	session, desc, err := a.OpenAvd(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	if session.Missing() {
		return fmt.Errorf("%s has no %s", desc.Name, entity.ConfigFileName)
	}
	for _, k := range keys {
		if err := session.SetBool(k, on); err != nil {
			return err
		}
	}
	if err := session.Save(a.Ctx()); err != nil {
		return err
	}

	r := styles.NewEntryRenderer(a.Theme)
	w := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprint(w, r.RenderSuccess(fmt.Sprintf("%s %s", styles.Checkbox(on), k)))
	}
	return nil
}
