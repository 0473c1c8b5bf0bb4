// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// writeDiff writes a line diff between before and after to w.
func writeDiff(w io.Writer, name string, before, after []byte) error {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	bw := bufio.NewWriter(w)
	bw.WriteString("--- " + name + "\n")
	bw.WriteString("+++ " + name + "\n")
	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			writeLines(bw, "+", text)
		case diffmatchpatch.DiffDelete:
			writeLines(bw, "-", text)
		case diffmatchpatch.DiffEqual:
			head, tail := diffContext, diffContext
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(text) <= head+tail {
				writeLines(bw, " ", text)
				continue
			}
			writeLines(bw, " ", text[:head])
			bw.WriteString("@@\n")
			writeLines(bw, " ", text[len(text)-tail:])
		}
	}
	return bw.Flush()
}

func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeLines(w *bufio.Writer, prefix string, lines []string) {
	for _, line := range lines {
		w.WriteString(prefix)
		w.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			w.WriteString("\n\\ No newline at end of file\n")
		}
	}
}
