// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"
	"testing"

	"go.astrophena.name/licstamp/license"
	"go.astrophena.name/licstamp/testutil"
)

func TestParseConfig(t *testing.T) {
	cases := map[string]struct {
		in         string
		wantText   string
		wantMarker string
		wantExcl   []string
		wantExts   []string
		wantErr    string
	}{
		"empty": {
			in:         "",
			wantText:   license.Text,
			wantMarker: license.Marker,
		},
		"comment only": {
			in:         "Configuration for prependlicense.\n",
			wantText:   license.Text,
			wantMarker: license.Marker,
		},
		"everything": {
			in: "-- license.txt --\nLine one.\n\nLine three.\n" +
				"-- marker.txt --\n  Line three  \n" +
				"-- exclude.json --\n[\"vendor\", \"out\"]\n" +
				"-- extensions.json --\n[\".h\", \".c\", \".cpp\"]\n",
			wantText:   "Line one.\n\nLine three.",
			wantMarker: "Line three",
			wantExcl:   []string{"vendor", "out"},
			wantExts:   []string{".h", ".c", ".cpp"},
		},
		"unknown files are ignored": {
			in:         "-- notes.md --\nhello\n",
			wantText:   license.Text,
			wantMarker: license.Marker,
		},
		"empty exclusions": {
			in:         "-- exclude.json --\n[]\n",
			wantText:   license.Text,
			wantMarker: license.Marker,
			wantExcl:   []string{},
		},
		"empty license": {
			in:      "-- license.txt --\n",
			wantErr: "license.txt is empty",
		},
		"no extensions": {
			in:      "-- extensions.json --\n[]\n",
			wantErr: "lists no extensions",
		},
		"bad json": {
			in:      "-- exclude.json --\n{\n",
			wantErr: "exclude.json",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseConfig([]byte(tc.in))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("parseConfig() error = %v, want one containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfig() returned error: %v", err)
			}
			testutil.AssertEqual(t, cfg.text, tc.wantText)
			testutil.AssertEqual(t, cfg.marker, tc.wantMarker)
			testutil.AssertEqual(t, cfg.scan.Exclude, tc.wantExcl)
			testutil.AssertEqual(t, cfg.scan.Extensions, tc.wantExts)
		})
	}
}

func TestConfigHeader(t *testing.T) {
	cfg, err := parseConfig([]byte("-- license.txt --\nISC License.\n"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(cfg.header().Block()), "// ISC License.\n\n")
}
