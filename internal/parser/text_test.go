package parser

import (
	"strings"
	"testing"
)

func TestTextParser_KeepsContentVerbatim(t *testing.T) {
	input := "First line\r\nSecond line\n\r\nThird"
	p, err := NewTextParser("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Name != "notes.txt" {
		t.Errorf("expected name %q, got %q", "notes.txt", doc.Name)
	}
	if doc.Text != input {
		t.Errorf("expected text %q, got %q", input, doc.Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p, _ := NewTextParser("utf-8")
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}

func TestTextParser_StripsUTF8BOM(t *testing.T) {
	p, _ := NewTextParser("utf-8")
	doc, err := p.Parse(strings.NewReader("\xEF\xBB\xBFhello"), "bom.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "hello" {
		t.Errorf("expected %q, got %q", "hello", doc.Text)
	}
}

func TestTextParser_UTF16BOMOverridesConfiguredEncoding(t *testing.T) {
	// "hi" in UTF-16LE with BOM.
	raw := "\xFF\xFEh\x00i\x00"
	p, _ := NewTextParser("windows-1252")
	doc, err := p.Parse(strings.NewReader(raw), "wide.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "hi" {
		t.Errorf("expected %q, got %q", "hi", doc.Text)
	}
}

func TestTextParser_ConfiguredLegacyEncoding(t *testing.T) {
	p, err := NewTextParser("gbk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Encoding() != "gbk" {
		t.Errorf("expected canonical name gbk, got %q", p.Encoding())
	}
	// "你好" in GBK.
	doc, err := p.Parse(strings.NewReader("\xC4\xE3\xBA\xC3"), "cn.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "你好" {
		t.Errorf("expected %q, got %q", "你好", doc.Text)
	}
}

func TestNewTextParser_UnknownEncoding(t *testing.T) {
	if _, err := NewTextParser("klingon-8"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"book.txt", true},
		{"archive.tar.txt", true},
		{"BOOK.TXT", false},
		{"book.Txt", false},
		{"book.md", false},
		{"txt", false},
		{".txt", true},
	}
	for _, tt := range tests {
		if got := IsTextFile(tt.name); got != tt.want {
			t.Errorf("IsTextFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
