package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/txtread/internal/document"
)

// TextExtension is the only accepted file suffix. The match is case-sensitive.
const TextExtension = ".txt"

// IsTextFile reports whether filename carries the text extension.
func IsTextFile(filename string) bool {
	return strings.HasSuffix(filename, TextExtension)
}

// Loader validates a configured path and reads it into a Document.
type Loader struct {
	parser   *TextParser
	maxBytes int64
}

// NewLoader returns a loader decoding files with the named encoding
// (any WHATWG label, e.g. "utf-8", "gbk", "windows-1252"). Files larger
// than maxBytes are rejected; maxBytes <= 0 disables the limit.
func NewLoader(encoding string, maxBytes int64) (*Loader, error) {
	p, err := NewTextParser(encoding)
	if err != nil {
		return nil, err
	}
	return &Loader{parser: p, maxBytes: maxBytes}, nil
}

// Load checks path and reads the whole file. Errors wrap one of the
// document.Err* sentinels.
func (l *Loader) Load(path string) (*document.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", document.ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", document.ErrReadFailed, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", document.ErrNotAFile, path)
	}

	name := filepath.Base(path)
	if !IsTextFile(name) {
		return nil, fmt.Errorf("%w: %s", document.ErrWrongFileType, name)
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", document.ErrReadFailed, path, info.Size(), l.maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", document.ErrReadFailed, path, err)
	}
	defer f.Close()

	doc, err := l.parser.Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", document.ErrReadFailed, path, err)
	}
	doc.Path = path
	return doc, nil
}
