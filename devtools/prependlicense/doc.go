// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Prependlicense stamps a license header onto C source files.

Usage:

	$ prependlicense [flags] [dir]

It recursively walks dir (the current directory by default), skipping any
directory named 3rdparty or build, and selects every file ending in .h or .c.
The files of a directory are handled before its subdirectories, headers
before sources.

Each file gets the license as a block of // comments followed by one blank
line. If the first line of a file mentions "Copyright", the file is assumed to
carry an older license block: everything up to and including the first line
that contains "limitations under the License" (in any case) is replaced. A
file whose old block lacks that line is an error. Files that already start
with the current block are left as they are.

By default stamped copies are written under /tmp (see -out), mirroring each
file's path relative to dir, and the originals are untouched. Use -inplace to
overwrite the originals, -dry to print the changes as a diff, or -check to
list files that need stamping and fail if there are any.

The tool can be configured through a .prependlicense.txtar file in dir. This
file is a txtar archive and can contain the following files:

  - license.txt: The license text, without comment markers.
  - marker.txt: The phrase that ends an older license block.
  - exclude.json: A JSON array of directory names to skip.
  - extensions.json: A JSON array of file extensions to select, in the order
    their files are handled within a directory.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licstamp/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
