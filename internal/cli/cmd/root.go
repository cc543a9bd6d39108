// Package cmd provides Cobra CLI commands for gym.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GameraCC/gym/internal/cli"
	"github.com/GameraCC/gym/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "gym",
		Short: "Log training sets from the terminal with a shared numeric keypad",
		Long: `Gym - a workout logger driven by one shared numeric keypad.

Every input screen is a group of fields that take turns owning the keypad.
Tapping a field hands the keypad to it, Continue moves on to the next field,
and the last field closes the keypad.

Features:
  - Digits, decimal point, backspace and configurable +/- increments
  - Screens of chained fields defined in config.toml
  - Live reload of the increment step while a screen is open
  - Scripted replays of keypad sessions for checking a screen layout

Use 'gym keypad' to open the default screen, or 'gym replay FILE' to run a
scripted session without a terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/gym/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command tree and closes the app whether or not the
// command failed; cobra skips post-run hooks after an error.
func run() error {
	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
		app = nil
	}
	return err
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
