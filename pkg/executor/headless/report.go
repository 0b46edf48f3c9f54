package headless

import (
	"fmt"
	"io"
	"strings"
)

// LogLevel represents the progress output verbosity
type LogLevel int

const (
	// LogLevelQuiet shows only errors and the final summary
	LogLevelQuiet LogLevel = iota
	// LogLevelNormal shows each operation as it runs (default)
	LogLevelNormal
	// LogLevelVerbose also lists the final items in the summary
	LogLevelVerbose
)

// Reporter prints script progress and the run summary for people watching
// a terminal or reading a CI log.
type Reporter struct {
	level  LogLevel
	writer io.Writer

	// ANSI color codes, empty when color is disabled
	colorReset     string
	colorCyan      string
	colorSalmon    string
	colorYellow    string
	colorRed       string
	colorGray      string
	colorBoldGreen string
	colorBoldRed   string
	colorBoldWhite string

	stepCount int
}

// NewReporter creates a reporter writing to w.
func NewReporter(level LogLevel, w io.Writer, color bool) *Reporter {
	r := &Reporter{level: level, writer: w}
	if color {
		r.colorReset = "\033[0m"
		r.colorCyan = "\033[36m"
		r.colorSalmon = "\033[38;5;217m" // Salmon pink #FFB3BA
		r.colorYellow = "\033[33m"
		r.colorRed = "\033[31m"
		r.colorGray = "\033[90m"
		r.colorBoldGreen = "\033[1;32m"
		r.colorBoldRed = "\033[1;31m"
		r.colorBoldWhite = "\033[1;37m"
	}
	return r
}

// Header prints a prominent header message
func (r *Reporter) Header(message string) {
	if r.level >= LogLevelNormal {
		fmt.Fprintf(r.writer, "%s%s%s\n", r.colorBoldWhite, strings.Repeat("=", 50), r.colorReset)
		fmt.Fprintf(r.writer, "%s  %s%s\n", r.colorBoldWhite, message, r.colorReset)
		fmt.Fprintf(r.writer, "%s%s%s\n", r.colorBoldWhite, strings.Repeat("=", 50), r.colorReset)
	}
}

// Step prints a numbered step
func (r *Reporter) Step(message string) {
	r.stepCount++
	if r.level >= LogLevelNormal {
		fmt.Fprintf(r.writer, "%s[%d] %s%s\n", r.colorCyan, r.stepCount, message, r.colorReset)
	}
}

// Successf prints a success message with checkmark
func (r *Reporter) Successf(format string, args ...interface{}) {
	if r.level >= LogLevelNormal {
		fmt.Fprintf(r.writer, "%s  ✓ %s%s\n", r.colorBoldGreen, fmt.Sprintf(format, args...), r.colorReset)
	}
}

// Errorf prints an error message at every level
func (r *Reporter) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, "%s  ✗ Error: %s%s\n", r.colorBoldRed, fmt.Sprintf(format, args...), r.colorReset)
}

// Summary prints the final run summary
func (r *Reporter) Summary(result *Result) {
	fmt.Fprintf(r.writer, "%s%s%s\n", r.colorBoldWhite, strings.Repeat("=", 50), r.colorReset)
	fmt.Fprint(r.writer, "  Status: ")
	switch result.Status {
	case statusSuccess:
		fmt.Fprintf(r.writer, "%s✓ SUCCESS%s\n", r.colorBoldGreen, r.colorReset)
	case statusPartialSuccess:
		fmt.Fprintf(r.writer, "%s⚠ PARTIAL SUCCESS%s\n", r.colorYellow, r.colorReset)
	case statusFailed:
		fmt.Fprintf(r.writer, "%s✗ FAILED%s\n", r.colorBoldRed, r.colorReset)
	default:
		fmt.Fprintln(r.writer, result.Status)
	}

	fmt.Fprintf(r.writer, "  Applied: %d  Failed: %d  Skipped: %d\n", result.Applied, result.Failed, result.Skipped)
	fmt.Fprintf(r.writer, "  Items: %d\n", len(result.Items))

	if r.level >= LogLevelVerbose {
		for i, item := range result.Items {
			fmt.Fprintf(r.writer, "%s    %d. %s%s\n", r.colorSalmon, i, item, r.colorReset)
		}
	}

	if result.PersistError != nil {
		fmt.Fprintf(r.writer, "%s  Not saved: %v%s\n", r.colorRed, result.PersistError, r.colorReset)
	}
	fmt.Fprintf(r.writer, "%s%s%s\n", r.colorBoldWhite, strings.Repeat("=", 50), r.colorReset)
}

// parseLogLevel converts a verbosity string to a LogLevel
func parseLogLevel(level string) LogLevel {
	switch level {
	case "quiet":
		return LogLevelQuiet
	case "verbose":
		return LogLevelVerbose
	default:
		return LogLevelNormal
	}
}
