// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/licstamp/license"
	"go.astrophena.name/licstamp/scan"
)

const configFile = ".prependlicense.txtar"

type config struct {
	text   string
	marker string
	scan   scan.Options
}

func defaultConfig() *config {
	return &config{
		text:   license.Text,
		marker: license.Marker,
	}
}

func (cfg *config) header() *license.Header { return license.New(cfg.text, cfg.marker) }

// parseConfig reads configuration from a txtar archive. Unknown files are
// ignored.
func parseConfig(data []byte) (*config, error) {
	cfg := defaultConfig()
	ar := txtar.Parse(data)
	for _, f := range ar.Files {
		switch f.Name {
		case "license.txt":
			cfg.text = strings.TrimSuffix(string(f.Data), "\n")
			if cfg.text == "" {
				return nil, fmt.Errorf("%s: license.txt is empty", configFile)
			}
		case "marker.txt":
			cfg.marker = strings.TrimSpace(string(f.Data))
		case "exclude.json":
			if err := json.Unmarshal(f.Data, &cfg.scan.Exclude); err != nil {
				return nil, fmt.Errorf("%s: exclude.json: %w", configFile, err)
			}
		case "extensions.json":
			if err := json.Unmarshal(f.Data, &cfg.scan.Extensions); err != nil {
				return nil, fmt.Errorf("%s: extensions.json: %w", configFile, err)
			}
			if len(cfg.scan.Extensions) == 0 {
				return nil, fmt.Errorf("%s: extensions.json lists no extensions", configFile)
			}
		}
	}
	return cfg, nil
}
