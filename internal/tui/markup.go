package tui

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Paragraphs parses page markup the way a browser view would and
// returns one display line per paragraph. Text outside paragraphs
// becomes its own line.
func Paragraphs(page string) []string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(page), body)
	if err != nil {
		return []string{sanitize(page)}
	}

	var lines []string
	for _, n := range nodes {
		switch {
		case n.Type == html.ElementNode && n.DataAtom == atom.P:
			lines = append(lines, sanitize(textContent(n)))
		case n.Type == html.TextNode:
			lines = append(lines, sanitize(n.Data))
		case n.Type == html.ElementNode:
			lines = append(lines, sanitize(textContent(n)))
		}
	}
	return lines
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

// sanitize replaces control characters (lone CR/LF, tabs) with spaces so
// one paragraph stays on one screen row.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
