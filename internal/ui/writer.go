package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color definitions for consistent UI
var (
	// Brown color for startup info
	brownColor = color.New(color.FgYellow, color.Faint)

	// Gray color for hunk narration
	grayColor = color.New(color.FgWhite, color.Faint)

	// Red for errors
	errorColor = color.New(color.FgRed)

	// Yellow for warnings
	warnColor = color.New(color.FgYellow)

	// White for results
	whiteColor = color.New(color.FgWhite)
)

// Writer provides formatted output with consistent prefixes and optional colors.
type Writer struct {
	quiet    bool
	headless bool // Route progress to stderr, final result to stdout
	stderr   io.Writer
	stdout   io.Writer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{
		stderr: os.Stderr,
		stdout: os.Stdout,
	}
}

// SetQuiet enables or disables quiet mode (suppresses all output except Result).
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetHeadless enables headless mode where progress goes to stderr and the
// final result to stdout.
func (w *Writer) SetHeadless(headless bool) {
	w.headless = headless
}

// StartupInfo prints startup information in brown.
func (w *Writer) StartupInfo(msg string) {
	if w.quiet {
		return
	}
	if w.headless {
		fmt.Fprintln(w.stderr, msg)
	} else {
		brownColor.Println(msg)
	}
}

// Info prints an info message with [info] prefix in gray.
func (w *Writer) Info(msg string) {
	if w.quiet {
		return
	}
	if w.headless {
		fmt.Fprintf(w.stderr, "[info] %s\n", msg)
	} else {
		grayColor.Printf("[info] %s\n", msg)
	}
}

// Warn prints a warning message with [warn] prefix in yellow.
func (w *Writer) Warn(msg string) {
	if w.quiet {
		return
	}
	if w.headless {
		fmt.Fprintf(w.stderr, "[warn] %s\n", msg)
	} else {
		warnColor.Printf("[warn] %s\n", msg)
	}
}

// Error prints an error message with [error] prefix in red.
// Errors print even in quiet mode.
func (w *Writer) Error(msg string) {
	if w.headless {
		fmt.Fprintf(w.stderr, "[error] %s\n", msg)
	} else {
		errorColor.Printf("[error] %s\n", msg)
	}
}

// Narrate prints per-hunk progress in gray, indented under the operation.
func (w *Writer) Narrate(msg string) {
	if w.quiet {
		return
	}
	if w.headless {
		fmt.Fprintf(w.stderr, "  %s\n", msg)
	} else {
		grayColor.Printf("  %s\n", msg)
	}
}

// Result prints the final output in white. In headless mode this goes to
// stdout so it can be piped.
func (w *Writer) Result(msg string) {
	if w.headless {
		fmt.Fprintf(w.stdout, "%s\n", msg)
	} else {
		whiteColor.Printf("%s\n", msg)
	}
}
