package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <avd> <key>",
	Short: "Print the raw value of a key",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, desc, err := a.OpenAvd(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	value, ok := session.Get(args[1])
	if !ok {
		return fmt.Errorf("key %q not set in %s", args[1], desc.ConfigPath)
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
