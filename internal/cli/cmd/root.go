// Package cmd provides Cobra CLI commands for avdedit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/avdedit/internal/cli"
	"github.com/bnema/avdedit/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "avdedit [avd]",
		Short: "Edit Android Virtual Device config.ini files",
		Long: `avdedit - a keyboard-driven editor for Android emulator AVD settings.

Every AVD keeps its hardware and feature switches in a flat config.ini of
key=value lines. avdedit lists the AVDs under your AVD root, shows the
known boolean settings as checkboxes and keeps every other line editable
as free text.

Features:
  - Checkbox view for boolean keys (true/false and yes/no encodings)
  - Free-text editing and new key=value entries
  - Atomic saves with sorted keys
  - Live reload when config.ini changes on disk

Run without arguments to open the interactive editor, or use the
subcommands for scripting.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runEdit,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.AvdRoot, "avd-root", "",
		"directory holding the *.avd folders (default ~/.android/avd)")
	rootCmd.PersistentFlags().BoolVarP(&appOpts.Verbose, "verbose", "v", false, "log to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the app or an error when initialization was skipped.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
