package ui

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// NewTable returns a borderless light table that renders to w.
func NewTable(w io.Writer, header ...interface{}) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false
	if len(header) > 0 {
		tbl.AppendHeader(table.Row(header))
	}
	return tbl
}
