package ui

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditDiff shows how after differs from before. Without color, deletions
// read [-like this-] and insertions {+like this+}.
func EditDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if color.NoColor {
				b.WriteString("[-" + d.Text + "-]")
			} else {
				b.WriteString(color.New(color.FgRed, color.CrossedOut).Sprint(d.Text))
			}
		case diffmatchpatch.DiffInsert:
			if color.NoColor {
				b.WriteString("{+" + d.Text + "+}")
			} else {
				b.WriteString(color.New(color.FgGreen, color.Underline).Sprint(d.Text))
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
