// Package tui provides the interactive terminal interface for simpletodo:
// a list of items with an add input below it and a modal edit view.
//
// The package is split into:
// - executor.go: Executor implementation and program lifecycle
// - model.go: Core model structure and state
// - update.go: Bubble Tea Update function and key handling
// - view.go: Bubble Tea View function and rendering
// - overlay.go: Edit view and overlay rendering helpers
// - keys.go: Key bindings
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs the interactive list UI against a Store.
type Executor struct {
	store    Store
	logger   Logger
	settings Settings
	program  *tea.Program

	programOpts []tea.ProgramOption
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the session logger.
func WithLogger(logger Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSettings overrides DefaultSettings.
func WithSettings(settings Settings) Option {
	return func(e *Executor) {
		e.settings = settings
	}
}

// WithProgramOptions passes extra options to the Bubble Tea program,
// such as alternate input and output streams.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(e *Executor) {
		e.programOpts = append(e.programOpts, opts...)
	}
}

// NewExecutor creates a TUI executor for store. The store is expected to
// be loaded already.
func NewExecutor(store Store, opts ...Option) *Executor {
	e := &Executor{
		store:    store,
		logger:   nopLogger{},
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func (e *Executor) Run(ctx context.Context) error {
	e.logger.Infof("TUI starting")

	m := newModel(e.store, e.settings, e.logger)

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, e.programOpts...)
	e.program = tea.NewProgram(m, opts...)

	if _, err := e.program.Run(); err != nil {
		// A cancelled context is a shutdown request, not a failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			e.logger.Infof("TUI stopped: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	e.logger.Infof("TUI exited")
	return nil
}
