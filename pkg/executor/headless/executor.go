package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	statusSuccess        = "success"
	statusPartialSuccess = "partial_success"
	statusFailed         = "failed"
)

// ErrNotSaved is returned when the run finished but the final list could
// not be written to the data file.
var ErrNotSaved = errors.New("script applied but not saved")

// Store is the part of *items.Store a script run needs.
type Store interface {
	Items() []string
	Append(text string)
	UpdateAt(index int, text string) error
	RemoveAt(index int) error
	LastPersistError() error
}

// Logger receives diagnostics for the session log.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// StepResult records the outcome of one operation.
type StepResult struct {
	Step      int // 1-based position in the script
	Operation Operation
	Err       error
}

// Result summarizes a script run.
type Result struct {
	Status       string
	Applied      int
	Failed       int
	Skipped      int
	Steps        []StepResult
	Items        []string
	PersistError error
	Duration     time.Duration
}

// Executor runs a Script against a Store.
type Executor struct {
	store    Store
	script   *Script
	reporter *Reporter
	logger   Logger
	writer   io.Writer
	color    bool
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithWriter sets where progress output goes (default os.Stdout).
func WithWriter(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.writer = w
	}
}

// WithColor enables or disables ANSI colors in progress output.
func WithColor(enabled bool) ExecutorOption {
	return func(e *Executor) {
		e.color = enabled
	}
}

// WithLogger sets the session logger.
func WithLogger(logger Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor validates script and prepares a run against store.
func NewExecutor(store Store, script *Script, opts ...ExecutorOption) (*Executor, error) {
	if script == nil {
		return nil, fmt.Errorf("script is required")
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	e := &Executor{
		store:  store,
		script: script,
		logger: nopLogger{},
		writer: os.Stdout,
		color:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reporter = NewReporter(parseLogLevel(script.Verbosity), e.writer, e.color)
	return e, nil
}

// Run applies every operation in order. It stops at the first failing
// operation unless the script sets continue_on_error, and checks ctx
// between operations. The returned Result is always non-nil.
func (e *Executor) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{}
	var runErr error

	e.reporter.Header(fmt.Sprintf("Applying %d operations", len(e.script.Operations)))

	for i, op := range e.script.Operations {
		if err := ctx.Err(); err != nil {
			result.Skipped = len(e.script.Operations) - i
			runErr = fmt.Errorf("script interrupted before operation %d: %w", i+1, err)
			break
		}

		e.reporter.Step(op.String())
		step := StepResult{Step: i + 1, Operation: op, Err: e.apply(op)}
		result.Steps = append(result.Steps, step)

		if step.Err != nil {
			result.Failed++
			e.reporter.Errorf("%v", step.Err)
			e.logger.Errorf("Script operation %d (%s) failed: %v", step.Step, op, step.Err)
			if !e.script.ContinueOnError {
				result.Skipped = len(e.script.Operations) - i - 1
				runErr = fmt.Errorf("operation %d (%s): %w", step.Step, op, step.Err)
				break
			}
			continue
		}

		result.Applied++
		e.reporter.Successf("done")
	}

	result.Items = e.store.Items()
	result.PersistError = e.store.LastPersistError()
	result.Duration = time.Since(start)

	switch {
	case runErr != nil:
		result.Status = statusFailed
	case result.PersistError != nil:
		result.Status = statusFailed
		runErr = fmt.Errorf("%w: %v", ErrNotSaved, result.PersistError)
	case result.Failed > 0:
		result.Status = statusPartialSuccess
	default:
		result.Status = statusSuccess
	}

	e.logger.Infof("Script finished: status=%s applied=%d failed=%d skipped=%d", result.Status, result.Applied, result.Failed, result.Skipped)
	e.reporter.Summary(result)
	return result, runErr
}

func (e *Executor) apply(op Operation) error {
	switch op.Op {
	case OpAdd:
		e.store.Append(*op.Text)
		return nil
	case OpUpdate:
		return e.store.UpdateAt(*op.Index, *op.Text)
	case OpRemove:
		return e.store.RemoveAt(*op.Index)
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}
