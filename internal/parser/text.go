package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/txtread/internal/document"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextParser decodes plain text files in one fixed encoding.
type TextParser struct {
	enc  encoding.Encoding
	name string
}

// NewTextParser looks up the encoding by its WHATWG label. An empty
// label means UTF-8.
func NewTextParser(label string) (*TextParser, error) {
	if label == "" {
		label = "utf-8"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, _ := htmlindex.Name(enc)
	return &TextParser{enc: enc, name: name}, nil
}

// Encoding returns the canonical name of the parser's encoding.
func (p *TextParser) Encoding() string {
	return p.name
}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// A leading BOM overrides the configured encoding and is dropped.
	dec := unicode.BOMOverride(p.enc.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.name, err)
	}

	return &document.Document{
		Name: filename,
		Text: string(data),
	}, nil
}
