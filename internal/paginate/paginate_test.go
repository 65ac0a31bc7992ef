package paginate

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestPaginate_ExampleFromThreeLines(t *testing.T) {
	pages := Paginate("a\r\nb\r\nc", 2)

	want := []string{"<p>a</p><p>b</p>", "<p>c</p>"}
	if !slices.Equal(pages, want) {
		t.Fatalf("expected %q, got %q", want, pages)
	}
}

func TestPaginate_EmptyTextYieldsOnePage(t *testing.T) {
	for _, n := range []int{1, 2, 1000} {
		pages := Paginate("", n)
		if len(pages) != 1 {
			t.Fatalf("pageSize %d: expected 1 page, got %d", n, len(pages))
		}
		if pages[0] != "<p></p>" {
			t.Errorf("pageSize %d: expected %q, got %q", n, "<p></p>", pages[0])
		}
	}
}

func TestPaginate_OnlyCRLFSeparates(t *testing.T) {
	// Lone LF and CR stay inside the line.
	pages := Paginate("one\ntwo\rthree\r\nfour", 10)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	want := "<p>one\ntwo\rthree</p><p>four</p>"
	if pages[0] != want {
		t.Errorf("expected %q, got %q", want, pages[0])
	}
}

func TestPaginate_TrailingSeparatorAddsEmptyLine(t *testing.T) {
	pages := Paginate("a\r\nb\r\n", 2)
	want := []string{"<p>a</p><p>b</p>", "<p></p>"}
	if !slices.Equal(pages, want) {
		t.Errorf("expected %q, got %q", want, pages)
	}
}

func TestPaginate_PageCountMatchesCeiling(t *testing.T) {
	for lines := 1; lines <= 25; lines++ {
		parts := make([]string, lines)
		for i := range parts {
			parts[i] = fmt.Sprintf("line %d", i)
		}
		text := strings.Join(parts, Separator)

		for n := 1; n <= 7; n++ {
			want := (lines + n - 1) / n
			if got := len(Paginate(text, n)); got != want {
				t.Errorf("lines=%d n=%d: expected %d pages, got %d", lines, n, want, got)
			}
			if got := Count(text, n); got != want {
				t.Errorf("lines=%d n=%d: Count returned %d, want %d", lines, n, got, want)
			}
		}
	}
}

func TestPaginate_LastPageHoldsRemainder(t *testing.T) {
	text := strings.Join([]string{"1", "2", "3", "4", "5", "6", "7"}, Separator)
	pages := Paginate(text, 3)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if got := len(Unwrap(pages[2])); got != 1 {
		t.Errorf("expected 1 line on last page, got %d", got)
	}

	pages = Paginate(strings.Join([]string{"1", "2", "3", "4", "5", "6"}, Separator), 3)
	if got := len(Unwrap(pages[1])); got != 3 {
		t.Errorf("expected full last page of 3 lines, got %d", got)
	}
}

func TestPaginate_UnwrapRoundTrip(t *testing.T) {
	lines := []string{"first", "", "  indented", "with\nnewline", "unicode 你好", "<b>bold</b>", ""}
	text := strings.Join(lines, Separator)

	for n := 1; n <= len(lines)+1; n++ {
		var got []string
		for _, page := range Paginate(text, n) {
			got = append(got, Unwrap(page)...)
		}
		if !slices.Equal(got, lines) {
			t.Errorf("n=%d: round trip mismatch: expected %q, got %q", n, lines, got)
		}
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	text := "x\r\ny\r\nz"
	a := Paginate(text, 2)
	b := Paginate(text, 2)
	if !slices.Equal(a, b) {
		t.Errorf("expected identical output, got %q and %q", a, b)
	}
}

func TestPaginate_HugePageSizeHoldsEverything(t *testing.T) {
	text := strings.Repeat("x\r\n", 2000) + "x"
	for _, n := range []int{math.MaxInt, math.MaxInt - 1023} {
		pages := Paginate(text, n)
		if len(pages) != 1 {
			t.Fatalf("pageSize %d: expected 1 page, got %d", n, len(pages))
		}
		if got := len(Unwrap(pages[0])); got != 2001 {
			t.Errorf("pageSize %d: expected 2001 lines, got %d", n, got)
		}
		if got := Count(text, n); got != 1 {
			t.Errorf("pageSize %d: Count = %d, want 1", n, got)
		}
	}
}

func TestPaginate_NonPositivePageSizePanics(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("pageSize %d: expected panic", n)
				}
			}()
			Paginate("a", n)
		}()
	}
}

func TestUnwrap_EmptyPage(t *testing.T) {
	if got := Unwrap(""); len(got) != 0 {
		t.Errorf("expected no lines, got %q", got)
	}
}
