package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticLevel controls how chatty the CLI is.
type DiagnosticLevel int

const (
	DiagnosticQuiet DiagnosticLevel = iota // errors and final results only
	DiagnosticInfo                         // normal progress output
	DiagnosticDebug                        // per-file details
)

// DiagnosticSystem writes leveled, optionally colored progress output. All
// generator diagnostics go through it so quiet/verbose modes behave
// consistently.
type DiagnosticSystem struct {
	level  DiagnosticLevel
	output io.Writer
	errOut io.Writer
}

// NewDiagnosticSystem creates a diagnostic system at the given level.
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{level: level, output: os.Stdout, errOut: os.Stderr}
}

// NewQuietDiagnostics creates a system that only reports errors and results.
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticQuiet)
}

// NewVerboseDiagnostics creates a system with per-file details enabled.
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticDebug)
}

// SetOutput redirects both streams, used by tests.
func (d *DiagnosticSystem) SetOutput(w io.Writer) {
	d.output = w
	d.errOut = w
}

// Header prints the tool banner.
func (d *DiagnosticSystem) Header(message string) {
	if d.level >= DiagnosticInfo {
		cyan := color.New(color.FgCyan)
		cyan.Fprintf(d.output, "proof: %s\n", message)
	}
}

// Phase prints a phase header.
func (d *DiagnosticSystem) Phase(name string) {
	if d.level >= DiagnosticInfo {
		blue := color.New(color.FgBlue)
		blue.Fprintf(d.output, "\n%s:\n", name)
	}
}

// Item prints a completed phase item.
func (d *DiagnosticSystem) Item(format string, args ...any) {
	if d.level >= DiagnosticInfo {
		green := color.New(color.FgGreen)
		green.Fprint(d.output, "✓ ")
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// Writing prints a file-writing progress item.
func (d *DiagnosticSystem) Writing(path string) {
	if d.level >= DiagnosticInfo {
		magenta := color.New(color.FgMagenta)
		magenta.Fprint(d.output, "✏ ")
		fmt.Fprintf(d.output, "Writing %s\n", path)
	}
}

// Debug prints a detail line, verbose mode only.
func (d *DiagnosticSystem) Debug(format string, args ...any) {
	if d.level >= DiagnosticDebug {
		fmt.Fprintf(d.output, "- "+format+"\n", args...)
	}
}

// Error prints an error line. Always shown, regardless of level.
func (d *DiagnosticSystem) Error(format string, args ...any) {
	red := color.New(color.FgRed)
	red.Fprint(d.errOut, "✗ ")
	fmt.Fprintf(d.errOut, format+"\n", args...)
}

// Summary prints the final result line.
func (d *DiagnosticSystem) Summary(format string, args ...any) {
	green := color.New(color.FgGreen)
	green.Fprintf(d.output, format+"\n", args...)
}
