// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package scan finds source files in a directory tree.
package scan

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

var (
	// DefaultExclude lists directory names that are never descended into.
	DefaultExclude = []string{"3rdparty", "build"}
	// DefaultExtensions lists the selected file extensions in output order.
	DefaultExtensions = []string{".h", ".c"}
)

// Options control which files [Sources] returns.
type Options struct {
	// Exclude lists directory names to skip at any depth. Nil means
	// DefaultExclude.
	Exclude []string
	// Extensions lists file name suffixes to select, matched exactly. Within a
	// directory, files are grouped by the first extension they match, in this
	// order. Nil means DefaultExtensions.
	Extensions []string
}

func (o *Options) exclude() []string {
	if o == nil || o.Exclude == nil {
		return DefaultExclude
	}
	return o.Exclude
}

func (o *Options) extensions() []string {
	if o == nil || o.Extensions == nil {
		return DefaultExtensions
	}
	return o.Extensions
}

// Excluded reports whether a directory with the given name is skipped.
func (o *Options) Excluded(name string) bool {
	return slices.Contains(o.exclude(), name)
}

// Sources returns the source files under root in fsys.
//
// A directory's own files come before those of its subdirectories. They are
// grouped by extension in the order of [Options.Extensions], each group
// sorted by name. Subdirectories are visited in name order.
func Sources(fsys fs.FS, root string, opts *Options) ([]string, error) {
	var sources []string
	if err := walk(fsys, root, opts, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func walk(fsys fs.FS, dir string, opts *Options, sources *[]string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	exts := opts.extensions()
	groups := make([][]string, len(exts))
	var subdirs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if !opts.Excluded(name) {
				subdirs = append(subdirs, name)
			}
			continue
		}
		for i, ext := range exts {
			if strings.HasSuffix(name, ext) {
				groups[i] = append(groups[i], path.Join(dir, name))
				break
			}
		}
	}

	for _, g := range groups {
		*sources = append(*sources, g...)
	}
	for _, name := range subdirs {
		if err := walk(fsys, path.Join(dir, name), opts, sources); err != nil {
			return err
		}
	}
	return nil
}
