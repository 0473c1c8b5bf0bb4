// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/licstamp/testutil"
)

func TestGetDefault(t *testing.T) {
	l := Get(context.Background())
	testutil.AssertEqual(t, IsDefault(l), true)
	// Must not panic or write anywhere.
	Info(context.Background(), "discarded", slog.String("k", "v"))
}

func TestPutGet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil, false)
	ctx := Put(context.Background(), l)

	testutil.AssertEqual(t, IsDefault(Get(ctx)), false)
	testutil.AssertEqual(t, LevelVar(ctx).Level(), slog.LevelInfo)

	Info(ctx, "stamping", slog.String("path", "core/a.c"))
	Debug(ctx, "hidden")

	got := buf.String()
	if !strings.Contains(got, "stamping") || !strings.Contains(got, "path=core/a.c") {
		t.Fatalf("unexpected log output: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug record logged at info level: %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("colored output with color disabled: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("want one record, got %q", got)
	}
}

func TestLevelVar(t *testing.T) {
	var buf bytes.Buffer
	ctx := Put(context.Background(), New(&buf, nil, false))

	LevelVar(ctx).Set(slog.LevelDebug)
	Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug record not logged after lowering level: %q", buf.String())
	}
}

func TestNoTimestamp(t *testing.T) {
	var buf bytes.Buffer
	ctx := Put(context.Background(), New(&buf, nil, false))
	Warn(ctx, "careful")
	got := buf.String()
	if !strings.Contains(got, "WRN careful") {
		t.Fatalf("unexpected log output: %q", got)
	}
	if strings.Contains(got, "M ") {
		t.Fatalf("record carries a timestamp: %q", got)
	}
}
