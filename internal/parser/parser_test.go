package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/txtread/internal/document"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoader_LoadsTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "story.txt", "a\r\nb")

	l, err := NewLoader("utf-8", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Path != path {
		t.Errorf("expected path %q, got %q", path, doc.Path)
	}
	if doc.Name != "story.txt" {
		t.Errorf("expected name story.txt, got %q", doc.Name)
	}
	if doc.Text != "a\r\nb" {
		t.Errorf("unexpected text %q", doc.Text)
	}
}

func TestLoader_Failures(t *testing.T) {
	dir := t.TempDir()
	upper := writeFile(t, dir, "LOUD.TXT", "x")
	md := writeFile(t, dir, "notes.md", "x")
	big := writeFile(t, dir, "big.txt", strings.Repeat("x", 64))

	l, _ := NewLoader("utf-8", 32)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "nope.txt"), document.ErrPathNotFound},
		{"directory", dir, document.ErrNotAFile},
		{"uppercase extension", upper, document.ErrWrongFileType},
		{"markdown", md, document.ErrWrongFileType},
		{"too large", big, document.ErrReadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := l.Load(tt.path)
			if doc != nil {
				t.Errorf("expected nil document, got %+v", doc)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
