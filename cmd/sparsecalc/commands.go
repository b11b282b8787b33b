// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/sparsemat/calculator"
	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/spf13/cobra"
)

const serviceName = "sparsecalc"

// options collects the persistent flags shared by every command.
type options struct {
	cfg      calculator.Config
	logLevel string
	logJSON  bool
}

// newRootCmd wires the command tree to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{cfg: calculator.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   serviceName,
		Short: "Add, subtract and multiply sparse integer matrices",
		Long: `sparsecalc loads two matrices stored as (row,col,value) lines and
offers addition, subtraction and multiplication from an interactive menu.
Each result is printed and saved as <operation>_result.txt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := opts.load(out, errOut)
			if err != nil {
				return err
			}

			return calc.RunMenu(in)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <operation>...",
		Short: "Apply operations without the menu (add, sub, mul or 1/2/3)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := make([]calculator.Operation, 0, len(args))
			for _, a := range args {
				op, err := calculator.ParseOperation(a)
				if err != nil {
					return err
				}
				ops = append(ops, op)
			}
			calc, err := opts.load(out, errOut)
			if err != nil {
				return err
			}

			return calc.RunBatch(ops)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfg.InputDir, "input-dir", opts.cfg.InputDir, "directory holding the operand files")
	pf.StringVar(&opts.cfg.OutputDir, "output-dir", opts.cfg.OutputDir, "directory receiving the result files")
	pf.StringVar(&opts.cfg.FirstFile, "first", opts.cfg.FirstFile, "left operand file (relative to --input-dir unless absolute)")
	pf.StringVar(&opts.cfg.SecondFile, "second", opts.cfg.SecondFile, "right operand file (relative to --input-dir unless absolute)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	return rootCmd
}

// load builds the logger and calculator, then loads both operands.
func (o *options) load(out, errOut io.Writer) (*calculator.Calculator, error) {
	logger, err := o.logger(errOut)
	if err != nil {
		return nil, err
	}
	calc := calculator.New(o.cfg, logger, out)
	if err := calc.Load(); err != nil {
		return nil, err
	}

	return calc, nil
}

func (o *options) logger(errOut io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Config{
		Level:   level,
		Service: serviceName,
		JSON:    o.logJSON,
		Output:  errOut,
	}), nil
}
