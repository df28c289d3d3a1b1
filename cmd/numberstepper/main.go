// Numberstepper is a terminal number stepper: a numeric field between a
// decrement and an increment button, with bounds and a step.
//
// Usage:
//
//	numberstepper [flags]
//	numberstepper eval [ops...] [flags]
//
// Running without arguments opens the interactive stepper and prints the
// committed value on exit. See 'numberstepper --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/numberstepper/internal/logging"
	"github.com/muurk/numberstepper/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "numberstepper",
	Short: "Bounded numeric input with step buttons",
	Long: `An interactive number stepper for the terminal.

The value is truncated to a multiple of --step and clamped to
[--min, --max]. Typed digits are committed when the field loses focus
or the on-screen keyboard hides; the buttons step from the typed text.

Options are read from the config file and overridden by flags.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runInteractive,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "numberstepper %s\n", version.Full())
	},
}
