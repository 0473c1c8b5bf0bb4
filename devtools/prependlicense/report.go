// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.astrophena.name/licstamp/license"
)

type pending struct {
	path   string
	status license.Status
}

// writeReport prints a table of files that need stamping.
func writeReport(w io.Writer, files []pending) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"File", "License"})
	for _, f := range files {
		tbl.AppendRow(table.Row{f.path, f.status})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d files", len(files))})
	fmt.Fprintln(w, tbl.Render())
}
