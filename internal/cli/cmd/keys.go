package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/domain/entity"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys shown as checkboxes",
	Long: `List the config.ini keys known to hold booleans and their encoding.

RealBoolean keys are written as true/false, YesNoBoolean keys as yes/no.
Every other key is edited as free text.`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, k := range entity.ClassifiedKeys() {
		fmt.Fprintf(w, "%-34s %s\n", k, a.Theme.Subtle.Render(entity.Classify(k).String()))
	}
	return nil
}
