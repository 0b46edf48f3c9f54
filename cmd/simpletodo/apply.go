package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/entrhq/simpletodo/pkg/executor/headless"
)

func newApplyCmd(opts *options) *cobra.Command {
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "apply SCRIPT.yaml",
		Short: "Apply a YAML script of add/update/remove operations",
		Long: `Apply a batch of operations from a YAML file, in order.

Example script:

  continue_on_error: false
  operations:
    - op: add
      text: buy milk
    - op: update
      index: 0
      text: buy oat milk
    - op: remove
      index: 1

The run stops at the first failing operation unless the script sets
continue_on_error or --continue-on-error is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := headless.LoadScript(args[0])
			if err != nil {
				return err
			}
			if continueOnError {
				script.ContinueOnError = true
			}

			s, err := openSession(cmd, opts, "headless")
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			executor, err := headless.NewExecutor(
				s.store,
				script,
				headless.WithWriter(out),
				headless.WithColor(isTerminal(out)),
				headless.WithLogger(s.logger),
			)
			if err != nil {
				return err
			}

			_, err = executor.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep going after a failing operation")
	return cmd
}

// isTerminal reports whether w is a terminal that can show ANSI colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
