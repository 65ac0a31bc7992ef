package api

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed assets/panel.html
var panelHTML []byte

//go:embed assets/help.md
var helpMarkdown []byte

const helpHeader = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>txtread help</title>
<style>body{font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem}
table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.2rem .5rem}</style>
</head><body>
`

const helpFooter = "</body></html>\n"

// renderHelp converts the embedded usage notes to an HTML page.
func renderHelp() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	buf.WriteString(helpHeader)
	if err := md.Convert(helpMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("render help: %w", err)
	}
	buf.WriteString(helpFooter)
	return buf.Bytes(), nil
}

func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(panelHTML)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.help)
}
