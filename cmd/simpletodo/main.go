// Package main provides the simpletodo command: a list of short text items
// kept in a plain file, managed from an interactive terminal UI, one-shot
// subcommands or a YAML script.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const version = "0.1.0" // Version of simpletodo

// options holds the persistent flags shared by every command.
type options struct {
	dataFile   string
	configPath string
	verbose    bool
}

func main() {
	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "simpletodo",
		Short: "A minimal to-do list for the terminal",
		Long: `simpletodo keeps a flat list of short text items in a plain file,
one item per line. Every change is written to disk immediately.

Run without arguments to start the interactive list. Indexes used by the
subcommands are zero-based and match the numbers shown by 'list'.`,
		Example: `  simpletodo                          # interactive list
  simpletodo add buy milk
  simpletodo list --match '*milk*'
  simpletodo edit 0 buy oat milk
  simpletodo remove 0
  simpletodo apply ops.yaml --continue-on-error
  simpletodo config init`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataFile, "file", "", "data file (default: storage.data_file from config, else ~/.simpletodo/todo.txt)")
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: ~/.simpletodo/config.json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "mirror diagnostics to stderr")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
		newApplyCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simpletodo v%s\n", version)
		},
	}
}
