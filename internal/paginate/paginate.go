package paginate

import (
	"fmt"
	"strings"
)

const (
	// Separator is the literal line separator. Lone "\n" or "\r" are
	// part of a line's content.
	Separator = "\r\n"

	// Tag wraps every line of a page.
	Tag = "p"

	openTag  = "<" + Tag + ">"
	closeTag = "</" + Tag + ">"
)

// Lines splits text on Separator. An empty text yields one empty line.
func Lines(text string) []string {
	return strings.Split(text, Separator)
}

// Count returns the number of pages Paginate would produce.
func Count(text string, pageSize int) int {
	mustPositive(pageSize)
	return pageCount(strings.Count(text, Separator)+1, pageSize)
}

// Paginate groups the lines of text into pages of pageSize lines. Each
// line is wrapped in <p></p> and the wrapped lines of a page are joined
// without a separator. The last page may hold fewer lines.
func Paginate(text string, pageSize int) []string {
	mustPositive(pageSize)

	lines := Lines(text)
	pages := make([]string, 0, pageCount(len(lines), pageSize))

	var b strings.Builder
	for start := 0; start < len(lines); start += min(pageSize, len(lines)) {
		end := start + min(pageSize, len(lines)-start)
		b.Reset()
		for _, line := range lines[start:end] {
			b.WriteString(openTag)
			b.WriteString(line)
			b.WriteString(closeTag)
		}
		pages = append(pages, b.String())
	}
	return pages
}

// Unwrap returns the lines of a page produced by Paginate. It is the
// exact inverse only for lines that do not themselves contain the
// closing tag.
func Unwrap(page string) []string {
	var lines []string
	for rest := page; strings.HasPrefix(rest, openTag); {
		rest = rest[len(openTag):]
		i := strings.Index(rest, closeTag)
		if i < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:i])
		rest = rest[i+len(closeTag):]
	}
	return lines
}

// pageCount is ceil(lines/pageSize) for lines >= 1, without the overflow
// of the usual (lines+pageSize-1) form when pageSize is near MaxInt.
func pageCount(lines, pageSize int) int {
	return (lines-1)/pageSize + 1
}

func mustPositive(pageSize int) {
	if pageSize <= 0 {
		panic(fmt.Sprintf("paginate: page size must be positive, got %d", pageSize))
	}
}
