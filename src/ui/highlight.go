package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
)

// PrintDiff writes a unified diff to w, highlighted when color output is
// enabled.
func PrintDiff(w io.Writer, diff string) {
	if !strings.HasSuffix(diff, "\n") {
		diff += "\n"
	}
	if color.NoColor {
		fmt.Fprint(w, diff)
		return
	}
	if err := quick.Highlight(w, diff, "diff", "terminal256", "onedark"); err != nil {
		Warning(w, "Syntax highlighting failed, printing plain text: %v", err)
		fmt.Fprint(w, diff)
	}
}
