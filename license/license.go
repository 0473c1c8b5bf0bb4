// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package license renders a license notice as a block of line comments and
// stamps it onto the beginning of source files.
package license

import (
	"bytes"
	"errors"
	"strings"
)

// Text is the license notice prepended to every source file.
const Text = "Copyright 2012-2013 Jeffrey Johnson.\n" +
	"\n" +
	"This file is part of Polymec, and is licensed under the Apache License, \n" +
	"Version 2.0 (the \"License\"); you may not use this file except in \n" +
	"compliance with the License. You may may find the text of the license in \n" +
	"the LICENSE file at the top-level source directory, or obtain a copy of \n" +
	"it at\n" +
	"\n" +
	"http://www.apache.org/licenses/LICENSE-2.0\n" +
	"\n" +
	"Unless required by applicable law or agreed to in writing, software\n" +
	"distributed under the License is distributed on an \"AS IS\" BASIS,\n" +
	"WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.\n" +
	"See the License for the specific language governing permissions and\n" +
	"limitations under the License."

// Marker is the phrase that ends an existing license block. It is matched
// without regard to case.
const Marker = "limitations under the license"

// CommentPrefix starts every line of a rendered block.
const CommentPrefix = "// "

// ErrEndMarkerNotFound is returned by [Header.Stamp] when a file starts with
// a copyright line but no later line carries the end marker.
var ErrEndMarkerNotFound = errors.New("license block end not found")

// Status describes the license state a file was in before stamping.
type Status int

const (
	// Unlicensed files get the block prepended to their whole content.
	Unlicensed Status = iota
	// Outdated files have their old block replaced.
	Outdated
	// Current files already start with the exact block and are left alone.
	Current
)

func (s Status) String() string {
	switch s {
	case Unlicensed:
		return "unlicensed"
	case Outdated:
		return "outdated"
	case Current:
		return "current"
	}
	return "unknown"
}

// Header is a rendered license block together with the marker used to find
// the end of an older one.
type Header struct {
	block  []byte
	marker string
}

// New returns a Header for text. An empty marker means [Marker].
func New(text, marker string) *Header {
	if marker == "" {
		marker = Marker
	}
	var buf bytes.Buffer
	for line := range strings.SplitSeq(text, "\n") {
		buf.WriteString(CommentPrefix)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	return &Header{
		block:  buf.Bytes(),
		marker: strings.ToLower(marker),
	}
}

// Default returns a Header for [Text] and [Marker].
func Default() *Header { return New(Text, Marker) }

// Block returns the commented license lines followed by one blank line.
func (h *Header) Block() []byte { return bytes.Clone(h.block) }

// Stamp returns content with the license block at its beginning.
//
// If the first line mentions "Copyright", everything up to and including the
// end-marker line is dropped and replaced by the block. Otherwise the block is
// prepended to the whole content. Content that already begins with the block
// is returned unchanged with status [Current].
func (h *Header) Stamp(content []byte) ([]byte, Status, error) {
	if bytes.HasPrefix(content, h.block) {
		return content, Current, nil
	}

	lines := Lines(content)
	status := Unlicensed
	if len(lines) > 0 && bytes.Contains(lines[0], []byte("Copyright")) {
		end, ok := h.endOfBlock(lines)
		if !ok {
			return nil, Outdated, ErrEndMarkerNotFound
		}
		lines = lines[end+1:]
		status = Outdated
	}

	out := bytes.NewBuffer(make([]byte, 0, len(h.block)+len(content)))
	out.Write(h.block)
	for _, line := range lines {
		out.Write(line)
	}
	return out.Bytes(), status, nil
}

// endOfBlock returns the index of the first line containing the marker.
func (h *Header) endOfBlock(lines [][]byte) (int, bool) {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(string(line)), h.marker) {
			return i, true
		}
	}
	return 0, false
}

// Lines splits content into lines, each keeping its trailing newline. The
// last line has none if content does not end with one.
func Lines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	lines := bytes.SplitAfter(content, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FirstLine returns the first line of content without its line terminator.
func FirstLine(content []byte) string {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	return string(bytes.TrimSuffix(line, []byte("\r")))
}
