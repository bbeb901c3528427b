// Package commands implements CLI command handlers for aoc.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/aoc/pkg/config"
	"github.com/Sumatoshi-tech/aoc/pkg/version"
)

// Options are the flags shared by every command. Flags given on the command
// line override the configuration file and environment.
type Options struct {
	ConfigPath      string
	InputDir        string
	Example         bool
	Format          string
	NoColor         bool
	LogLevel        string
	MetricsTextfile string
}

// NewRootCommand builds the aoc command tree.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Daily puzzle solvers",
		Long: `aoc solves daily puzzles from plain text inputs.

Commands:
  run       Solve one or more days
  list      List registered days
  check     Compare answers with an expected answers file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file path (default .aoc.yaml in CWD or $HOME)")
	flags.StringVar(&opts.InputDir, "input-dir", config.DefaultInputDir, "Directory holding day-NN.txt inputs")
	flags.BoolVar(&opts.Example, "example", false, "Read day-NN.example.txt inputs")
	flags.StringVar(&opts.Format, "format", config.DefaultOutputFormat, "Output format: text, json, yaml")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// resolve loads the configuration and applies explicitly set flags.
func (o *Options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("input-dir") {
		cfg.Input.Dir = o.InputDir
	}

	if flags.Changed("example") {
		cfg.Input.Example = o.Example
	}

	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(o.Format)
	}

	if flags.Changed("no-color") {
		cfg.Output.NoColor = o.NoColor
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(o.LogLevel)
	}

	if flags.Changed("metrics-textfile") {
		cfg.Telemetry.MetricsTextfile = o.MetricsTextfile
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "aoc %s\n", version.String())

			return err
		},
	}
}
