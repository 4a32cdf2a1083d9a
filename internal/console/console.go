// Package console provides colored status output for the devlog CLI.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output streams. Swapped in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	infoTag    = color.New(color.FgBlue).SprintFunc()
	successTag = color.New(color.FgGreen).SprintFunc()
	warnTag    = color.New(color.FgYellow).SprintFunc()
	errorTag   = color.New(color.FgRed).SprintFunc()
	stepTag    = color.New(color.FgCyan).SprintFunc()
)

// exit is replaced in tests.
var exit = os.Exit

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, infoTag("[INFO]")+" "+format+"\n", args...)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, successTag("[OK]")+" "+format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, warnTag("[WARN]")+" "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, errorTag("[ERROR]")+" "+format+"\n", args...)
}

// Step prints a step message
func Step(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, stepTag("[STEP]")+" "+format+"\n", args...)
}

// Print prints a plain message
func Print(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format+"\n", args...)
}

// Fatal prints an error message and exits
func Fatal(format string, args ...interface{}) {
	Error(format, args...)
	exit(1)
}

// SetNoColor forces colored tags on or off.
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}
