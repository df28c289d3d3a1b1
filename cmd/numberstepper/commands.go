package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numberstepper/internal/config"
	"github.com/muurk/numberstepper/internal/logging"
	"github.com/muurk/numberstepper/internal/stepper"
	"github.com/muurk/numberstepper/internal/tui"
	"github.com/muurk/numberstepper/internal/ui"
)

// Stepper option flags
var (
	configPath string
	title      string
	flagOpts   = config.Defaults()
	forceInit  bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default is the platform config dir)")
	flags.Float64Var(&flagOpts.Step, "step", flagOpts.Step, "Quantization step, at least 1")
	flags.Float64Var(&flagOpts.MinValue, "min", flagOpts.MinValue, "Inclusive lower bound")
	flags.Float64Var(&flagOpts.MaxValue, "max", flagOpts.MaxValue, "Inclusive upper bound")
	flags.Float64Var(&flagOpts.Value, "value", flagOpts.Value, "Initial value")
	flags.Float64Var(&flagOpts.ButtonSize, "button-size", flagOpts.ButtonSize, "Button size in logical units")
	flags.Float64Var(&flagOpts.Density, "density", flagOpts.Density, "Terminal cells per logical unit")

	rootCmd.Flags().StringVar(&title, "title", "Number Stepper", "Title shown above the stepper")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(configCmd)
}

// loadOptions reads the config file and applies flags the user set.
// Overrides get the same checks as file values.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	var (
		opts config.Options
		err  error
	)
	if configPath != "" {
		opts, err = config.Load(configPath)
	} else {
		opts, err = config.LoadDefault()
	}
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *float64
		src  float64
	}{
		{"step", &opts.Step, flagOpts.Step},
		{"min", &opts.MinValue, flagOpts.MinValue},
		{"max", &opts.MaxValue, flagOpts.MaxValue},
		{"value", &opts.Value, flagOpts.Value},
		{"button-size", &opts.ButtonSize, flagOpts.ButtonSize},
		{"density", &opts.Density, flagOpts.Density},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.src
		}
	}

	return opts.Sanitize(), nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(opts)
	m.Title = title

	logging.Info("Starting stepper",
		zap.Float64("step", opts.Step),
		zap.Float64("min", opts.MinValue),
		zap.Float64("max", opts.MaxValue),
		zap.Float64("value", opts.Value),
	)

	program := tea.NewProgram(m, tea.WithMouseCellMotion(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stepper failed: %w", err)
	}
	m.Detach()

	printState(ui.NewPrinter(cmd.OutOrStdout()), "Stepper closed", m)
	return nil
}

// evalCmd runs a stepper script without a terminal
var evalCmd = &cobra.Command{
	Use:   "eval [ops...]",
	Short: "Run stepper operations headlessly and print the result",
	Long: `Build a stepper from the config and flags, apply each operation in
order, and print the committed state.

Operations:
  inc, dec          press a button
  focus, blur       move input focus to or from the field
  clear             erase the pending text
  type=<digits>     type into the focused field
  keyboard=show     shrink the window as a soft keyboard would
  keyboard=hide     restore the window height
  set=<number>      set the value programmatically
  detach            tear the stepper down`,
	Example: `  # Initial value snapped to the step grid (prints 10)
  numberstepper eval --step 5 --min 0 --max 20 --value 12

  # Press increment at the upper bound
  numberstepper eval --min 0 --max 10 --value 9 inc inc

  # Type a value and commit it by hiding the keyboard
  numberstepper eval --max 100 focus keyboard=show clear type=42 keyboard=hide`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	m := tui.NewModel(opts)
	if err := tui.RunScript(m, args); err != nil {
		printer.PrintError("Script failed", err)
		return err
	}
	m.Detach()

	printState(printer, "Script complete", m)
	return nil
}

func printState(p *ui.Printer, heading string, m *tui.Model) {
	state := m.Controller().State()
	p.PrintSuccess(heading, []ui.Detail{
		{Key: "Value", Value: stepper.Format(state.Value)},
		{Key: "Step", Value: stepper.Format(state.Step)},
		{Key: "Min", Value: stepper.Format(state.Min)},
		{Key: "Max", Value: stepper.Format(state.Max)},
		{Key: "Editable", Value: fmt.Sprintf("%t", state.Editable)},
		{Key: "Changes", Value: fmt.Sprintf("%d", m.Changes())},
	})
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stepper config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		if err := config.WriteDefault(path, forceInit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective options as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(opts.ToFile())
		if err != nil {
			return fmt.Errorf("failed to marshal options: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
