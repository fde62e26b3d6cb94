// Package ui renders gca's terminal output: status lines, tables, diffs and
// the bubbletea editors.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func Success(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, a...))
}

func Failure(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, a...))
}

func Info(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", color.CyanString("ℹ"), fmt.Sprintf(format, a...))
}

func Warning(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, a...))
}

// Heading prints a bold magenta line, used for menu titles.
func Heading(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgMagenta, color.Bold).Sprintf(format, a...))
}
