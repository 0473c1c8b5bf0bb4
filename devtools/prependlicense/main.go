// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"go.astrophena.name/licstamp/cli"
	"go.astrophena.name/licstamp/license"
	"go.astrophena.name/licstamp/logger"
	"go.astrophena.name/licstamp/scan"
	"go.astrophena.name/licstamp/syncx"
)

// errNotCurrent is returned in -check mode when some files need stamping.
var errNotCurrent = errors.New("some files do not carry the current license")

func main() { cli.Main(new(app)) }

type app struct {
	out     string
	config  string
	dry     bool
	check   bool
	inplace bool
	verbose bool

	// dirs holds output directories that are known to exist.
	dirs syncx.Map[string, struct{}]
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.out, "out", os.TempDir(), "Write stamped copies under `dir`.")
	fs.StringVar(&a.config, "config", "", "Read configuration from `file` instead of "+configFile+" in the scanned directory.")
	fs.BoolVar(&a.dry, "dry", false, "Print the changes as a diff, without writing files.")
	fs.BoolVar(&a.check, "check", false, "List files that need stamping and fail if there are any, without writing files.")
	fs.BoolVar(&a.inplace, "inplace", false, "Overwrite the original files.")
	fs.BoolVar(&a.verbose, "v", false, "Log debug messages.")
}

type stats struct {
	byStatus map[license.Status]int
	written  uint64
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}

	root := "."
	switch len(env.Args) {
	case 0:
	case 1:
		root = env.Args[0]
	default:
		return fmt.Errorf("%w: at most one directory can be given, got %d", cli.ErrInvalidArgs, len(env.Args))
	}
	if n := countTrue(a.dry, a.check, a.inplace); n > 1 {
		return fmt.Errorf("%w: -dry, -check and -inplace are mutually exclusive", cli.ErrInvalidArgs)
	}

	fsys := os.DirFS(root)
	cfg, err := a.loadConfig(fsys)
	if err != nil {
		return err
	}
	hdr := cfg.header()

	sources, err := scan.Sources(fsys, ".", &cfg.scan)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	logger.Debug(ctx, "scanned", slog.String("root", root), slog.Int("files", len(sources)))

	st := stats{byStatus: make(map[license.Status]int)}
	var notCurrent []pending
	for _, path := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		logger.Info(ctx, "stamping", slog.String("path", path), slog.String("first_line", license.FirstLine(content)))

		stamped, status, err := hdr.Stamp(content)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		st.byStatus[status]++

		switch {
		case a.check:
			if status != license.Current {
				notCurrent = append(notCurrent, pending{path: path, status: status})
			}
		case a.dry:
			if status != license.Current {
				if err := writeDiff(env.Stdout, path, content, stamped); err != nil {
					return err
				}
			}
		case a.inplace:
			if status == license.Current {
				continue
			}
			if err := a.write(fsys, filepath.Join(root, filepath.FromSlash(path)), path, stamped); err != nil {
				return err
			}
			st.written += uint64(len(stamped))
		default:
			if err := a.write(fsys, filepath.Join(a.out, filepath.FromSlash(path)), path, stamped); err != nil {
				return err
			}
			st.written += uint64(len(stamped))
		}
	}

	logger.Info(ctx, "done",
		slog.Int("files", len(sources)),
		slog.Int("unlicensed", st.byStatus[license.Unlicensed]),
		slog.Int("outdated", st.byStatus[license.Outdated]),
		slog.Int("current", st.byStatus[license.Current]),
		slog.String("written", humanize.Bytes(st.written)),
	)

	if len(notCurrent) > 0 {
		writeReport(env.Stdout, notCurrent)
		return errNotCurrent
	}
	return nil
}

func (a *app) loadConfig(fsys fs.FS) (*config, error) {
	var (
		data []byte
		err  error
	)
	if a.config != "" {
		data, err = os.ReadFile(a.config)
	} else {
		data, err = fs.ReadFile(fsys, configFile)
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

// write writes content to dst, creating missing parent directories. The file
// keeps the permissions of the source file at src in fsys.
func (a *app) write(fsys fs.FS, dst, src string, content []byte) error {
	info, err := fs.Stat(fsys, src)
	if err != nil {
		return err
	}
	dir := filepath.Dir(dst)
	if _, ok := a.dirs.Load(dir); !ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		a.dirs.Store(dir, struct{}{})
	}
	return os.WriteFile(dst, content, info.Mode().Perm())
}

func countTrue(bs ...bool) int {
	var n int
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
