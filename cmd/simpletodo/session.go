package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	appconfig "github.com/entrhq/simpletodo/pkg/config"
	"github.com/entrhq/simpletodo/pkg/executor/tui"
	"github.com/entrhq/simpletodo/pkg/items"
	"github.com/entrhq/simpletodo/pkg/logging"
)

// session is what every command starts from: settings loaded, the item
// store loaded, and loggers for the command and the store.
type session struct {
	store       *items.Store
	logger      *logging.Logger
	storeLogger *logging.Logger
}

// openSession initializes configuration and logging for component and
// loads the item store.
func openSession(cmd *cobra.Command, opts *options, component string) (*session, error) {
	if err := appconfig.Initialize(opts.configPath); err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}

	path, err := resolveDataFile(opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd, opts, component)
	storeLogger := newLogger(cmd, opts, "store")
	logger.Debugf("Session %s writing log to %s", logger.SessionID(), logger.LogPath())

	store := items.NewStore(path, items.WithLogger(storeLogger))
	loaded := store.Load()
	logger.Infof("Loaded %d items from %s", len(loaded), path)

	return &session{
		store:       store,
		logger:      logger,
		storeLogger: storeLogger,
	}, nil
}

// Close flushes and closes the session's log files.
func (s *session) Close() {
	_ = s.logger.Close()
	_ = s.storeLogger.Close()
}

// newLogger opens the session log for component. NewLogger already falls
// back to stderr when the log file is unusable, so the error only decides
// whether mirroring would duplicate output.
func newLogger(cmd *cobra.Command, opts *options, component string) *logging.Logger {
	logger, err := logging.NewLogger(component)
	if err == nil && opts.verbose {
		logger.SetMirror(cmd.ErrOrStderr())
	}
	return logger
}

// resolveDataFile applies the precedence --file > storage.data_file >
// ~/.simpletodo/todo.txt.
func resolveDataFile(opts *options) (string, error) {
	if opts.dataFile != "" {
		return expandHome(opts.dataFile)
	}
	if storage := appconfig.GetStorage(); storage != nil {
		if path := storage.GetDataFile(); path != "" {
			return expandHome(path)
		}
	}
	return items.DefaultPath()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// tuiSettings maps the ui config section onto TUI settings.
func tuiSettings() tui.Settings {
	ui := appconfig.GetUI()
	if ui == nil {
		return tui.DefaultSettings()
	}
	allowEmpty, showConfirmations, toastDuration := ui.Settings()
	return tui.Settings{
		AllowEmptyItems:   allowEmpty,
		ShowConfirmations: showConfirmations,
		ToastDuration:     toastDuration,
	}
}

// runTUI executes the interactive mode
func runTUI(cmd *cobra.Command, opts *options) error {
	s, err := openSession(cmd, opts, "tui")
	if err != nil {
		return err
	}
	defer s.Close()

	executor := tui.NewExecutor(
		s.store,
		tui.WithLogger(s.logger),
		tui.WithSettings(tuiSettings()),
		tui.WithProgramOptions(tea.WithOutput(cmd.OutOrStdout())),
	)
	if err := executor.Run(cmd.Context()); err != nil {
		return fmt.Errorf("executor error: %w", err)
	}

	// The TUI already warned in a toast; repeat it once the screen is gone.
	if err := s.store.LastPersistError(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: the last change was not saved to %s: %v\n", s.store.Path(), err)
	}
	return nil
}
