// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"strings"
	"testing"

	"go.astrophena.name/licstamp/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"devel": {
			in:   Info{Name: "prependlicense", Version: "devel", Go: "go1.26.0", OS: "linux", Arch: "amd64"},
			want: "prependlicense devel\nbuilt with go1.26.0 for linux/amd64\n",
		},
		"with commit": {
			in:   Info{Name: "prependlicense", Version: "v1.0.0", Commit: "abc123", Go: "go1.26.0", OS: "linux", Arch: "arm64"},
			want: "prependlicense v1.0.0 (abc123)\nbuilt with go1.26.0 for linux/arm64\n",
		},
		"dirty": {
			in:   Info{Name: "x", Version: "devel", Commit: "abc123", Dirty: true, Go: "go1.26.0", OS: "darwin", Arch: "arm64"},
			want: "x devel (abc123, dirty)\nbuilt with go1.26.0 for darwin/arm64\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	testutil.AssertEqual(t, v.Go, runtime.Version())
	if v.Name == "" || strings.Contains(v.Name, "/") {
		t.Fatalf("unexpected command name %q", v.Name)
	}
	testutil.AssertEqual(t, CmdName(), v.Name)
}
