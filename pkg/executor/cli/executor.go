// Package cli runs one-shot list operations against an item store and
// prints the outcome, for use from scripts and the shell.
//
// Example usage:
//
//	store := items.NewStore(path)
//	store.Load()
//
//	executor := cli.NewExecutor(store, cli.WithWriter(os.Stdout))
//	if err := executor.Add("buy milk"); err != nil {
//	    log.Fatal(err)
//	}
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/entrhq/simpletodo/pkg/items"
)

// ErrNotSaved is returned when a mutation was applied in memory but the
// data file could not be written. A one-shot command has no later chance
// to retry, so the failure is surfaced here instead of being absorbed.
var ErrNotSaved = errors.New("change applied but not saved")

// Store is the part of *items.Store the executor needs.
type Store interface {
	Match(pattern string) ([]items.Match, error)
	Append(text string)
	UpdateAt(index int, text string) error
	RemoveAt(index int) error
	LastPersistError() error
}

// Logger receives a line per executed command.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{}) {}

// Executor prints list contents and confirmations to a writer.
type Executor struct {
	store  Store
	writer io.Writer
	logger Logger
}

// ExecutorOption is a function that configures an Executor.
type ExecutorOption func(*Executor)

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.writer = w
	}
}

// WithLogger sets the logger for executed commands.
func WithLogger(logger Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor creates a CLI executor over store.
func NewExecutor(store Store, opts ...ExecutorOption) *Executor {
	e := &Executor{
		store:  store,
		writer: os.Stdout,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List prints "index<TAB>text" for every item matching the glob pattern.
// An empty pattern lists everything.
func (e *Executor) List(pattern string) error {
	matches, err := e.store.Match(pattern)
	if err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Fprintf(e.writer, "%d\t%s\n", m.Index, items.EncodeItem(m.Text))
	}
	return nil
}

// Add appends text and confirms.
func (e *Executor) Add(text string) error {
	e.store.Append(text)
	e.logger.Infof("Added item %q", text)
	return e.confirm("Item added to list")
}

// Edit replaces the item at index and confirms.
func (e *Executor) Edit(index int, text string) error {
	if err := e.store.UpdateAt(index, text); err != nil {
		return describeIndexError(err)
	}
	e.logger.Infof("Updated item %d to %q", index, text)
	return e.confirm("Item updated")
}

// Remove deletes the item at index and confirms.
func (e *Executor) Remove(index int) error {
	if err := e.store.RemoveAt(index); err != nil {
		return describeIndexError(err)
	}
	e.logger.Infof("Removed item %d", index)
	return e.confirm("Item removed")
}

func (e *Executor) confirm(message string) error {
	if err := e.store.LastPersistError(); err != nil {
		e.logger.Warnf("%s in memory only: %v", message, err)
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	fmt.Fprintln(e.writer, message)
	return nil
}

// describeIndexError rewords an *items.IndexError for people at a shell.
func describeIndexError(err error) error {
	var indexErr *items.IndexError
	if errors.As(err, &indexErr) {
		return fmt.Errorf("no item at index %d (list has %d items): %w", indexErr.Index, indexErr.Len, err)
	}
	return err
}
