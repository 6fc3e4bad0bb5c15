// Package cli provides the command-line interface for brandpal.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandpal/internal/config"
	"github.com/jmylchreest/brandpal/internal/version"
)

// rootOptions holds the global flags and environment defaults shared by
// every subcommand.
type rootOptions struct {
	env      *config.EnvConfig
	verbose  bool
	quiet    bool
	logLevel string
}

// NewRootCmd builds the brandpal command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{env: config.Load()}

	cmd := &cobra.Command{
		Use:   "brandpal",
		Short: "Deterministic, accessible brand colour palettes",
		Long: `brandpal generates brand colour palettes from an industry, an optional brand
tone and theme, and a seed. Every palette fills five roles (primary, secondary,
accent, neutral, background), is checked against WCAG contrast and simulated
colour blindness, and comes with typography, iconography and logo ideas.

The same input and seed always produce the same palettes.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.env.Validate(); err != nil {
				return err
			}
			if opts.env.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output (debug logging)")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVar(&opts.logLevel, "log-level", opts.env.LogLevel, "log level (trace, debug, info, warn, error, off)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newIndustriesCmd())
	cmd.AddCommand(newTonesCmd())

	return cmd
}

// newLogger builds the stderr logger. An explicit --log-level wins over
// --verbose and --quiet, which win over the environment.
func (o *rootOptions) newLogger(cmd *cobra.Command, w io.Writer) (hclog.Logger, error) {
	level := hclog.LevelFromString(o.logLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level: %s", o.logLevel)
	}
	if !cmd.Flags().Changed("log-level") {
		switch {
		case o.verbose:
			level = hclog.Debug
		case o.quiet:
			level = hclog.Error
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "brandpal",
		Output: w,
		Level:  level,
	}), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
