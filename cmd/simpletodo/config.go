package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/entrhq/simpletodo/pkg/config"
	"github.com/entrhq/simpletodo/pkg/logging"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(
		newConfigInitCmd(opts),
		newConfigResetCmd(opts),
		newConfigPathsCmd(opts),
	)
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the settings file with every setting filled in",
		Long: `Write the settings file, keeping any values it already holds and
filling in defaults for the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appconfig.Initialize(opts.configPath); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			if err := appconfig.Global().SaveAll(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote settings to %s\n", appconfig.Path())
			return nil
		},
	}
}

func newConfigResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the settings file with defaults",
		Long: `Replace the settings file with the default value of every setting.
This also repairs a file that no longer loads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := appconfig.WriteDefaults(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored default settings in %s\n", path)
			return nil
		},
	}
}

func newConfigPathsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the settings, data and log locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appconfig.Initialize(opts.configPath); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			dataFile, err := resolveDataFile(opts)
			if err != nil {
				return err
			}
			logDir, err := logging.GetLogDirectory()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config\t%s\n", appconfig.Path())
			fmt.Fprintf(out, "data\t%s\n", dataFile)
			fmt.Fprintf(out, "logs\t%s\n", logDir)
			return nil
		},
	}
}
