package app

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sangtae/appicon/internal/icon"
	"github.com/sangtae/appicon/internal/render"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	a := New()
	a.OutputPath = filepath.Join(dir, icon.Filename)
	return a, dir
}

func TestRunWritesIcon(t *testing.T) {
	a, dir := newTestApp(t)
	var log bytes.Buffer
	a.Logger = NewFileLogger(&log)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != icon.Filename {
		t.Fatalf("directory contents = %v, want exactly %q", entries, icon.Filename)
	}

	f, err := os.Open(a.OutputPath)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if got := img.Bounds(); got.Dx() != render.CanvasWidth || got.Dy() != render.CanvasHeight {
		t.Errorf("artifact bounds = %v, want %dx%d", got, render.CanvasWidth, render.CanvasHeight)
	}

	if !strings.Contains(log.String(), "[INFO] icon: wrote ") {
		t.Errorf("log missing write confirmation, got:\n%s", log.String())
	}
}

func TestRunOverwritesExistingArtifact(t *testing.T) {
	a, dir := newTestApp(t)
	for i := 0; i < 2; i++ {
		if err := a.Run(context.Background()); err != nil {
			t.Fatalf("Run %d: %v", i+1, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory contents = %v, want a single artifact", entries)
	}
}

func TestRunWriteFailure(t *testing.T) {
	a, dir := newTestApp(t)
	a.OutputPath = filepath.Join(dir, "missing", icon.Filename)
	var log bytes.Buffer
	a.Logger = NewFileLogger(&log)

	if err := a.Run(context.Background()); err == nil {
		t.Fatal("Run with unwritable output path succeeded, want error")
	}
	if _, err := os.Stat(a.OutputPath); !os.IsNotExist(err) {
		t.Errorf("stat after failed run: %v, want not-exist", err)
	}
	if !strings.Contains(log.String(), "[ERROR] icon: write failed") {
		t.Errorf("log missing write failure, got:\n%s", log.String())
	}
}

func TestRunCanceledContext(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); err != context.Canceled {
		t.Fatalf("Run with canceled context = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(a.OutputPath); !os.IsNotExist(err) {
		t.Errorf("canceled run left an artifact: %v", err)
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("render", "canvas rendered, %dx%d", 1024, 1024)
	l.Errorf("icon", "write failed: %v", os.ErrPermission)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[INFO] render: canvas rendered, 1024x1024") {
		t.Errorf("info line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERROR] icon: write failed: permission denied") {
		t.Errorf("error line = %q", lines[1])
	}
}
