// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/licstamp/syncx"
)

// Info describes a build.
type Info struct {
	// Name is the command name.
	Name string
	// Version is the module version, or "devel" for local builds.
	Version string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Dirty is true if the working tree had local modifications.
	Dirty bool
	// Go is the Go toolchain version.
	Go string
	// OS and Arch are the target platform.
	OS, Arch string
}

// String returns a multi-line, human readable representation of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s for %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information of the running binary.
func Version() Info { return info.Get(load) }

// CmdName returns the base name of the running command.
func CmdName() string { return Version().Name }

func load() Info {
	i := Info{
		Name:    filepath.Base(os.Args[0]),
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Path != "" {
		i.Name = filepath.Base(bi.Path)
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}
