package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrhq/simpletodo/pkg/executor/cli"
)

// withCLI opens a session and hands a cli executor writing to the
// command's stdout to fn.
func withCLI(cmd *cobra.Command, opts *options, fn func(*cli.Executor) error) error {
	s, err := openSession(cmd, opts, "cli")
	if err != nil {
		return err
	}
	defer s.Close()

	executor := cli.NewExecutor(
		s.store,
		cli.WithWriter(cmd.OutOrStdout()),
		cli.WithLogger(s.logger),
	)
	return fn(executor)
}

func newListCmd(opts *options) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print items as index<TAB>text",
		Long: `Print every item on its own line, prefixed with its zero-based index.

With --match, only items matching the glob pattern are printed; indexes
still refer to positions in the full list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(cmd, opts, func(e *cli.Executor) error {
				return e.List(pattern)
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "glob pattern to filter items (e.g. '*milk*')")
	return cmd
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Append an item",
		Long:  "Append the arguments, joined by single spaces, as a new last item.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(cmd, opts, func(e *cli.Executor) error {
				return e.Add(strings.Join(args, " "))
			})
		},
	}
}

func newEditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit INDEX TEXT...",
		Short: "Replace the item at INDEX",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withCLI(cmd, opts, func(e *cli.Executor) error {
				return e.Edit(index, strings.Join(args[1:], " "))
			})
		},
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove INDEX",
		Aliases: []string{"rm"},
		Short:   "Remove the item at INDEX",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withCLI(cmd, opts, func(e *cli.Executor) error {
				return e.Remove(index)
			})
		},
	}
}

// parseIndex reads a zero-based index argument. Negative numbers parse and
// are left for the store to reject with its usual index error.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a whole number", arg)
	}
	return index, nil
}
