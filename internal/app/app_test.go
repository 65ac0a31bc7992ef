package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/txtread/internal/config"
	"github.com/dgallion1/txtread/internal/settings"
)

func TestNew_SeedsFileStoreAndLoads(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "book.txt")
	if err := os.WriteFile(book, []byte("x\r\ny\r\nz"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Config{
		SettingsFile:    filepath.Join(dir, "settings.json"),
		SeedFilePath:    book,
		SeedPageSize:    2,
		Encoding:        "utf-8",
		DefaultPageSize: 1000,
		QueueSize:       8,
	}
	r, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer r.Close()

	if v, _ := r.Store.Get(settings.KeyFilePath); v != book {
		t.Errorf("expected seeded path, got %#v", v)
	}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p, ok := r.Session.Current(); ok {
			if p.Total != 2 || p.Title != "book.txt" {
				t.Errorf("unexpected payload %+v", p)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for first page")
}

func TestNew_BadEncoding(t *testing.T) {
	cfg := config.Config{
		SettingsFile: filepath.Join(t.TempDir(), "settings.json"),
		Encoding:     "nope-42",
	}
	if _, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}
