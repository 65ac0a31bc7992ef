package tui

import (
	"slices"
	"testing"

	"github.com/dgallion1/txtread/internal/paginate"
)

func TestParagraphs_FromPaginatedPage(t *testing.T) {
	pages := paginate.Paginate("first\r\n\r\nthird & last", 10)
	got := Paragraphs(pages[0])
	want := []string{"first", "", "third & last"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParagraphs_RendersInlineMarkup(t *testing.T) {
	got := Paragraphs("<p>a <b>bold</b> word</p><p>x&amp;y</p>")
	want := []string{"a bold word", "x&y"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParagraphs_ControlCharactersBecomeSpaces(t *testing.T) {
	got := Paragraphs("<p>one\ntwo\tthree</p>")
	if len(got) != 1 || got[0] != "one two three" {
		t.Errorf("unexpected %q", got)
	}
}
